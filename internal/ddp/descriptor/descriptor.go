// Package descriptor はDDPフォルダ内のディスクリプタファイルに記録された
// CDTEXTのサイズを更新します
package descriptor

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/shiroemons/ddpclassicalfix/internal/ddp/fileutil"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/interfaces"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/models"
)

const (
	// Marker はディスクリプタを見分けるための文字列
	Marker = "CDTEXT"

	// FieldWidth はサイズフィールドの桁数
	FieldWidth = 6

	// MaxSize はサイズフィールドに書き込める最大値
	MaxSize = 999999
)

// SizePattern は6桁のサイズの直後に空白とCDTEXTが続く箇所にマッチします。
// \d と \s はASCIIの数字と空白のみにマッチします
var SizePattern = regexp.MustCompile(`(\d{6})(\s+CDTEXT)`)

// FormatSize はサイズを6桁のゼロ埋め文字列にします。
// 6桁に収まらない値はErrSizeOverflowを返します
func FormatSize(size int64) (string, error) {
	if size < 0 || size > MaxSize {
		return "", fmt.Errorf("%w: %d", ErrSizeOverflow, size)
	}
	return fmt.Sprintf("%0*d", FieldWidth, size), nil
}

// ReplaceSize はcontent中のすべてのサイズフィールドをsizeに置き換えます。
// 戻り値の2つ目はマッチした箇所の数です
func ReplaceSize(content string, size int64) (string, int, error) {
	formatted, err := FormatSize(size)
	if err != nil {
		return content, 0, err
	}
	matches := len(SizePattern.FindAllStringIndex(content, -1))
	if matches == 0 {
		return content, 0, nil
	}
	return SizePattern.ReplaceAllString(content, formatted+"${2}"), matches, nil
}

// Find はfolder直下の通常ファイルを名前順に調べ、CDTEXTを含む最初のテキストファイルを返します。
// excludeに含まれるファイル名は対象外です。見つからない場合は空文字列を返します
func Find(fs interfaces.FileSystem, folder string, exclude ...string) (string, error) {
	entries, err := fs.ReadDir(folder)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadDirectory, folder, err)
	}

	for _, entry := range entries {
		if !entry.IsRegular() || slices.Contains(exclude, entry.Name()) {
			continue
		}

		path := filepath.Join(folder, entry.Name())
		data, err := fs.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "read %s", path)
		}

		// テキストとして読めないファイルは対象外
		text, ok := fileutil.DecodeText(data)
		if !ok {
			continue
		}
		if strings.Contains(text, Marker) {
			return path, nil
		}
	}

	return "", nil
}

// Update はディスクリプタを探してCDTEXTのサイズを書き換えます。
// ディスクリプタが無い場合やパターンが見つからない場合はエラーにはなりません
func Update(fs interfaces.FileSystem, logger interfaces.Logger, folder string, size int64, dryRun bool, exclude ...string) (models.DescriptorResult, error) {
	var result models.DescriptorResult

	path, err := Find(fs, folder, exclude...)
	if err != nil {
		return result, err
	}
	if path == "" {
		logger.Warnf("Descriptor file not found! Skipping update.")
		return result, nil
	}
	result.Path = path
	logger.Debugf("Descriptor file: %s", path)

	data, err := fs.ReadFile(path)
	if err != nil {
		return result, errors.Wrapf(err, "read %s", path)
	}
	content := string(data)

	modified, matches, err := ReplaceSize(content, size)
	if err != nil {
		return result, err
	}
	result.Matches = matches

	if modified == content && matches > 0 {
		logger.Infof("CDTEXT size in %s is already %d", path, size)
		return result, nil
	}
	if modified == content {
		logger.Warnf("CDTEXT size update failed! No match found in %s.", path)
		return result, nil
	}

	if !dryRun {
		if err := fs.WriteFile(path, []byte(modified), fileutil.Perm(fs, path)); err != nil {
			return result, errors.Wrapf(err, "write %s", path)
		}
	}
	result.Updated = true
	logger.Infof("Updated CDTEXT size in %s: %d", path, size)

	return result, nil
}
