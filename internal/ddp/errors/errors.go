// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFolderNotFound はDDPフォルダが存在しない場合のエラー
	ErrFolderNotFound = errors.New("DDPフォルダが見つかりません")

	// ErrNotDirectory は指定されたパスがディレクトリでない場合のエラー
	ErrNotDirectory = errors.New("指定されたパスはディレクトリではありません")
)

// Stage はパイプラインの処理段階
type Stage string

const (
	StageValidate   Stage = "validate"
	StageCDText     Stage = "cdtext"
	StageDescriptor Stage = "descriptor"
	StageChecksum   Stage = "checksum"
)

// StageError はパイプラインの各段階で発生したI/Oエラー
type StageError struct {
	Stage Stage  // 実行していた段階
	Path  string // ファイルパス
	Err   error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap は元のエラーを返します
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError は新しいStageErrorを作成します
func NewStageError(stage Stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}

// StageOf はerrの連鎖からStageErrorを探し、その段階を返します
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
