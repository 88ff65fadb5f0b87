package descriptor

import "errors"

var (
	// ErrSizeOverflow はサイズが6桁のフィールドに収まらない場合のエラー
	ErrSizeOverflow = errors.New("CDTEXTのサイズが6桁のフィールドに収まりません")

	// ErrReadDirectory はフォルダ内のファイル一覧を取得できない場合のエラー
	ErrReadDirectory = errors.New("フォルダ内のファイル一覧を取得できませんでした")
)
