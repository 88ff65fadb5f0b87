package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/shiroemons/ddpclassicalfix/internal/ddp/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	return FileExists(filename)
}

// ReadFile はファイルを読み込みます
func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile はファイルを書き込みます。既存のファイルは切り詰められます
func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

// Stat はファイル情報を取得します
func (fs *OSFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return &osFileInfo{info}, nil
}

// ReadDir はディレクトリを読み込みます。エントリはファイル名順に並びます
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = &osDirEntry{DirEntry: entry, dir: dirname}
	}
	return result, nil
}

// Open は読み込み用にファイルを開きます
func (fs *OSFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// osFileInfo はos.FileInfoのラッパー
type osFileInfo struct {
	os.FileInfo
}

// Mode はファイルモードを返します
func (fi *osFileInfo) Mode() uint32 {
	return uint32(fi.FileInfo.Mode())
}

// osDirEntry はos.DirEntryのラッパー
type osDirEntry struct {
	os.DirEntry
	dir string
}

// IsRegular は通常ファイルかどうかを返します。シンボリックリンクはリンク先で判定します
func (de *osDirEntry) IsRegular() bool {
	if de.Type().IsRegular() {
		return true
	}
	if de.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(de.dir, de.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
