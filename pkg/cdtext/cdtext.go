// Package cdtext はDDPイメージに含まれるCDTEXT.BINのパケット列を扱うためのパッケージです。
//
// CD-Textのバイナリは18バイト固定長のパック（パケット）の並びで、
// 先頭バイトがパックの種別を表します。このパッケージが解釈するのは
// ジャンル用のパック種別 0x87 のみで、それ以外の内部構造は扱いません。
//
// 基本的な使い方:
//
//	data, _ := os.ReadFile("CDTEXT.BIN")
//	if fix, ok := cdtext.RemoveDuplicateGenre(data); ok {
//	    os.WriteFile("CDTEXT.BIN", fix.Data, 0644)
//	}
package cdtext

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

const (
	// PacketSize はCD-Textパック1つ分のバイト数
	PacketSize = 18

	// PackTypeGenre はジャンル情報パックの種別バイト
	PackTypeGenre byte = 0x87
)

// ClassicalTag は重複パックを持つマスタリング結果に現れるジャンル名
var ClassicalTag = []byte("Classical")

// Fix はRemoveDuplicateGenreによる修正結果
type Fix struct {
	Data      []byte // 修正後のデータ（入力とは別のバッファ）
	Markers   []int  // 検出したジャンルパックの開始位置
	RemovedAt int    // 削除したパックの開始位置
	OldSize   int
	NewSize   int
}

// FindMarkers はジャンルパックの種別バイトが現れる位置をすべて返します。
// 走査は1バイトずつ行うため、パック境界に揃っていない位置や重なった位置も含まれます。
// 末尾からPacketSizeバイト未満の位置は対象外です。
func FindMarkers(data []byte) []int {
	var positions []int
	for i := 0; i+PacketSize <= len(data); i++ {
		if data[i] == PackTypeGenre {
			positions = append(positions, i)
		}
	}
	return positions
}

// Packet はposから始まる1パック分のスライスを返します。範囲外の場合はnil
func Packet(data []byte, pos int) []byte {
	if pos < 0 || pos+PacketSize > len(data) {
		return nil
	}
	return data[pos : pos+PacketSize]
}

// PacketText はパックの内容をログ表示用の文字列に変換します。
// 不正なUTF-8シーケンスはU+FFFDに置き換えられます。
func PacketText(p []byte) string {
	text, _ := unicode.UTF8.NewDecoder().Bytes(p)
	return string(text)
}

// IsClassical は最初のジャンルパックが "Classical" を含むかどうかを判定します
func IsClassical(p []byte) bool {
	return bytes.Contains(p, ClassicalTag)
}

// RemoveDuplicateGenre は重複したジャンルパックを取り除きます。
//
// ジャンルパックが2つ以上あり、1つ目に "Classical" が含まれる場合に限り、
// 2つ目のパック（18バイト）を削除したデータを返します。
// 入力のスライスは変更しません。修正が不要な場合はfalseを返します。
func RemoveDuplicateGenre(data []byte) (Fix, bool) {
	markers := FindMarkers(data)
	if len(markers) < 2 {
		return Fix{Markers: markers, OldSize: len(data), NewSize: len(data)}, false
	}

	if !IsClassical(Packet(data, markers[0])) {
		return Fix{Markers: markers, OldSize: len(data), NewSize: len(data)}, false
	}

	second := markers[1]
	out := make([]byte, 0, len(data)-PacketSize)
	out = append(out, data[:second]...)
	out = append(out, data[second+PacketSize:]...)

	return Fix{
		Data:      out,
		Markers:   markers,
		RemovedAt: second,
		OldSize:   len(data),
		NewSize:   len(out),
	}, true
}
