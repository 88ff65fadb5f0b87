// Package models はddpclassicalfixのデータモデルを定義します
package models

// Report は1回の実行結果をまとめたもの
type Report struct {
	Folder  string
	Changed bool // CDTEXT.BINを修正したかどうか
	DryRun  bool

	CDText     CDTextResult
	Descriptor DescriptorResult
	Checksum   ChecksumResult
}

// CDTextResult はCDTEXT.BINの修正結果
type CDTextResult struct {
	Path      string
	Found     bool
	Markers   []int
	RemovedAt int
	OldSize   int64
	NewSize   int64
}

// DescriptorResult はディスクリプタの更新結果
type DescriptorResult struct {
	Path    string // 見つからなかった場合は空
	Updated bool   // パターンが見つからず更新できなかった場合はfalse
	Matches int
}

// ChecksumResult はchecksum.md5の更新結果
type ChecksumResult struct {
	Path    string // checksum.md5が無い場合は空
	Changes []ChecksumChange
}

// ChecksumChange は書き換えたマニフェストの1行
type ChecksumChange struct {
	FileName string
	OldHash  string
	NewHash  string
}
