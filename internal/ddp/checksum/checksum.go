// Package checksum はDDPフォルダのchecksum.md5を更新します。
//
// マニフェストは1行に1ファイルで、"<16進数のダイジェスト> *<ファイル名>" の形式です。
// 再計算の対象はTrackedFilesに挙げたファイルのみで、それ以外の行はそのまま残します。
package checksum

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/shiroemons/ddpclassicalfix/internal/ddp/fileutil"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/interfaces"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/models"
)

// ManifestName はマニフェストのファイル名
const ManifestName = "checksum.md5"

// chunkSize はダイジェスト計算時の読み込み単位
const chunkSize = 4096

// TrackedFiles はダイジェストを再計算するファイル。行の照合はこの順で行います
var TrackedFiles = []string{"CDTEXT.BIN", "DDPMS"}

// Digest はファイル名とそのMD5
type Digest struct {
	FileName string
	Hash     string
}

// FileMD5 はファイルのMD5を16進数の小文字で返します
func FileMD5(fs interfaces.FileSystem, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.CopyBuffer(h, f, make([]byte, chunkSize)); err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Compute はfolder内に存在するTrackedFilesのダイジェストを順に計算します
func Compute(fs interfaces.FileSystem, folder string) ([]Digest, error) {
	var digests []Digest
	for _, name := range TrackedFiles {
		path := filepath.Join(folder, name)
		if !fs.FileExists(path) {
			continue
		}
		hash, err := FileMD5(fs, path)
		if err != nil {
			return nil, err
		}
		digests = append(digests, Digest{FileName: name, Hash: hash})
	}
	return digests, nil
}

// Rewrite はマニフェストの各行を調べ、" *<ファイル名>" を含む行を新しいダイジェストで置き換えます。
// 1行につき最初に一致したファイル名のみを使います。出力の各行は "\n" で終わります
func Rewrite(manifest string, digests []Digest) (string, []models.ChecksumChange) {
	var b strings.Builder
	var changes []models.ChecksumChange

	scanner := bufio.NewScanner(strings.NewReader(manifest))
	scanner.Buffer(make([]byte, 0, 64*1024), len(manifest)+1)
	for scanner.Scan() {
		line := scanner.Text()

		updated := false
		for _, d := range digests {
			if !strings.Contains(line, " *"+d.FileName) {
				continue
			}
			var old string
			if fields := strings.Fields(line); len(fields) > 0 {
				old = fields[0]
			}
			b.WriteString(d.Hash + " *" + d.FileName + "\n")
			changes = append(changes, models.ChecksumChange{FileName: d.FileName, OldHash: old, NewHash: d.Hash})
			updated = true
			break
		}
		if !updated {
			b.WriteString(line + "\n")
		}
	}

	return b.String(), changes
}

// Update はchecksum.md5を再計算したダイジェストで書き換えます。
// マニフェストが無い場合は何もしません
func Update(fs interfaces.FileSystem, logger interfaces.Logger, folder string, dryRun bool) (models.ChecksumResult, error) {
	var result models.ChecksumResult

	path := filepath.Join(folder, ManifestName)
	if !fs.FileExists(path) {
		logger.Warnf("%s not found! Skipping update.", ManifestName)
		return result, nil
	}
	result.Path = path

	data, err := fs.ReadFile(path)
	if err != nil {
		return result, errors.Wrapf(err, "read %s", path)
	}

	digests, err := Compute(fs, folder)
	if err != nil {
		return result, err
	}

	rewritten, changes := Rewrite(string(data), digests)
	result.Changes = changes
	for _, c := range changes {
		logger.Infof("Updated MD5 for %s: %s → %s", c.FileName, c.OldHash, c.NewHash)
	}

	if dryRun {
		return result, nil
	}
	if err := fs.WriteFile(path, []byte(rewritten), fileutil.Perm(fs, path)); err != nil {
		return result, errors.Wrapf(err, "write %s", path)
	}

	return result, nil
}
