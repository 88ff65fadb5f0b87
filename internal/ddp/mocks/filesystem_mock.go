// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"sort"

	"github.com/shiroemons/ddpclassicalfix/internal/ddp/interfaces"
)

// ErrNotExist はモック上に存在しないパスを示すエラー
var ErrNotExist = errors.New("file not found")

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files map[string][]byte
	Dirs  map[string]bool

	// Error はすべての操作で返すエラー
	Error error
	// ReadErrors/WriteErrors/OpenErrors はパスごとに返すエラー
	ReadErrors  map[string]error
	WriteErrors map[string]error
	OpenErrors  map[string]error
	ReadDirErr  error

	// Writes は書き込まれたパスを順に記録します
	Writes []string
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:       make(map[string][]byte),
		Dirs:        make(map[string]bool),
		ReadErrors:  make(map[string]error),
		WriteErrors: make(map[string]error),
		OpenErrors:  make(map[string]error),
	}
}

// FileExists はファイルが存在するか確認します
func (fs *MockFileSystem) FileExists(filename string) bool {
	_, exists := fs.Files[filename]
	return exists || fs.Dirs[filename]
}

// ReadFile はファイルを読み込みます
func (fs *MockFileSystem) ReadFile(filename string) ([]byte, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	if err := fs.ReadErrors[filename]; err != nil {
		return nil, err
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, ErrNotExist
	}
	return bytes.Clone(data), nil
}

// WriteFile はファイルを書き込みます
func (fs *MockFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	if fs.Error != nil {
		return fs.Error
	}
	if err := fs.WriteErrors[filename]; err != nil {
		return err
	}
	fs.Files[filename] = bytes.Clone(data)
	fs.Writes = append(fs.Writes, filename)
	return nil
}

// Stat はファイル情報を取得します
func (fs *MockFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	if data, exists := fs.Files[name]; exists {
		return &MockFileInfo{name: filepath.Base(name), size: int64(len(data))}, nil
	}
	if fs.Dirs[name] {
		return &MockFileInfo{name: filepath.Base(name), isDir: true}, nil
	}
	return nil, ErrNotExist
}

// ReadDir はディレクトリを読み込みます。エントリは名前順に並びます
func (fs *MockFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	if fs.ReadDirErr != nil {
		return nil, fs.ReadDirErr
	}
	if !fs.Dirs[dirname] {
		return nil, ErrNotExist
	}

	var entries []interfaces.DirEntry
	for path := range fs.Files {
		if filepath.Dir(path) == dirname {
			entries = append(entries, &MockDirEntry{name: filepath.Base(path)})
		}
	}
	for path := range fs.Dirs {
		if filepath.Dir(path) == dirname && path != dirname {
			entries = append(entries, &MockDirEntry{name: filepath.Base(path), isDir: true})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

// Open はファイルを読み込み用に開きます
func (fs *MockFileSystem) Open(name string) (io.ReadCloser, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	if err := fs.OpenErrors[name]; err != nil {
		return nil, err
	}
	data, exists := fs.Files[name]
	if !exists {
		return nil, ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// MockFileInfo はテスト用のFileInfo実装
type MockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

// Name はファイル名を返します
func (fi *MockFileInfo) Name() string {
	return fi.name
}

// Size はファイルサイズを返します
func (fi *MockFileInfo) Size() int64 {
	return fi.size
}

// IsDir はディレクトリかどうかを返します
func (fi *MockFileInfo) IsDir() bool {
	return fi.isDir
}

// Mode はファイルモードを返します
func (fi *MockFileInfo) Mode() uint32 {
	if fi.isDir {
		return 0o755 | 1<<31
	}
	return 0o644
}

// MockDirEntry はテスト用のDirEntry実装
type MockDirEntry struct {
	name  string
	isDir bool
}

// Name はエントリ名を返します
func (de *MockDirEntry) Name() string {
	return de.name
}

// IsDir はディレクトリかどうかを返します
func (de *MockDirEntry) IsDir() bool {
	return de.isDir
}

// IsRegular は通常ファイルかどうかを返します
func (de *MockDirEntry) IsRegular() bool {
	return !de.isDir
}
