// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"os"

	"github.com/shiroemons/ddpclassicalfix/internal/ddp/interfaces"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// FileExists はファイルが存在するか確認します
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// DecodeText はdataを厳密なUTF-8テキストとして解釈します。
// 不正なバイト列を含む場合はfalseを返します
func DecodeText(data []byte) (string, bool) {
	text, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return "", false
	}
	return string(text), true
}

// DefaultPerm は既存ファイルのパーミッションが取得できない場合に使うパーミッション
const DefaultPerm uint32 = 0o644

// Perm は既存ファイルのパーミッションを返します。書き戻し時に元の権限を保つために使います
func Perm(fs interfaces.FileSystem, path string) uint32 {
	info, err := fs.Stat(path)
	if err != nil {
		return DefaultPerm
	}
	return info.Mode() & 0o777
}
