// Package interfaces はddpclassicalfixで使用するインターフェースを定義します
package interfaces

import "io"

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	Stat(name string) (FileInfo, error)
	ReadDir(dirname string) ([]DirEntry, error)
	Open(name string) (io.ReadCloser, error)
}

// FileInfo はファイル情報のインターフェース
type FileInfo interface {
	Name() string
	Size() int64
	IsDir() bool
	Mode() uint32
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
	IsRegular() bool
}

// Logger はログ出力のインターフェース
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
}
