// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shiroemons/ddpclassicalfix/internal/ddp/checksum"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/config"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/descriptor"
	ddperrors "github.com/shiroemons/ddpclassicalfix/internal/ddp/errors"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/fileutil"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/interfaces"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/logging"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/models"
	"github.com/shiroemons/ddpclassicalfix/pkg/cdtext"
)

// CDTextName はCD-Textバイナリのファイル名
const CDTextName = "CDTEXT.BIN"

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	fs     interfaces.FileSystem
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Logger     interfaces.Logger
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New(cfg.DebugMode, nil)
	}

	return &App{
		config: cfg,
		logger: logger,
		fs:     fs,
	}
}

// Run はCDTEXT.BINの修正、ディスクリプタの更新、checksum.md5の更新を順に実行します。
// 修正が不要だった場合はReport.Changedがfalseのままnilエラーを返します
func (a *App) Run(ctx context.Context) (models.Report, error) {
	report := models.Report{
		Folder: a.config.Folder,
		DryRun: a.config.DryRun,
	}

	if err := a.config.Validate(a.fs); err != nil {
		return report, ddperrors.NewStageError(ddperrors.StageValidate, "", err)
	}

	a.logger.Infof("Processing DDP folder: %s", a.config.Folder)
	if a.config.DryRun {
		a.logger.Warnf("DRY RUN: no files will be written")
	}

	// CDTEXT.BINの修正
	if err := checkContext(ctx); err != nil {
		return report, err
	}
	fixed, err := a.fixCDText(&report.CDText)
	if err != nil {
		return report, err
	}
	if !fixed {
		return report, nil
	}
	report.Changed = true

	// ディスクリプタの更新
	if err := checkContext(ctx); err != nil {
		return report, err
	}
	report.Descriptor, err = descriptor.Update(a.fs, a.logger, a.config.Folder, report.CDText.NewSize, a.config.DryRun,
		CDTextName, checksum.ManifestName)
	if err != nil {
		return report, ddperrors.NewStageError(ddperrors.StageDescriptor, a.config.Folder, err)
	}

	// checksum.md5の更新
	if err := checkContext(ctx); err != nil {
		return report, err
	}
	report.Checksum, err = checksum.Update(a.fs, a.logger, a.config.Folder, a.config.DryRun)
	if err != nil {
		return report, ddperrors.NewStageError(ddperrors.StageChecksum, a.config.Folder, err)
	}

	return report, nil
}

// fixCDText はCDTEXT.BINから重複したジャンルパックを取り除きます。
// 修正した場合はtrueを返します
func (a *App) fixCDText(result *models.CDTextResult) (bool, error) {
	path := filepath.Join(a.config.Folder, CDTextName)
	result.Path = path

	if !a.fs.FileExists(path) {
		a.logger.Warnf("%s not found! Skipping cleanup.", CDTextName)
		return false, nil
	}
	result.Found = true

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return false, ddperrors.NewStageError(ddperrors.StageCDText, path, fmt.Errorf("%w: %w", ErrReadFile, err))
	}

	fix, ok := cdtext.RemoveDuplicateGenre(data)
	result.Markers = fix.Markers
	result.OldSize = int64(fix.OldSize)
	result.NewSize = int64(fix.NewSize)

	a.logger.Infof("Found %d 0x%02x packets at positions: %v", len(fix.Markers), cdtext.PackTypeGenre, fix.Markers)
	for _, pos := range fix.Markers {
		a.logger.Debugf("packet at %d: %q", pos, cdtext.PacketText(cdtext.Packet(data, pos)))
	}

	if !ok {
		if len(fix.Markers) > 1 {
			a.logger.Infof("First 0x%02x packet does not contain '%s', skipping removal.", cdtext.PackTypeGenre, cdtext.ClassicalTag)
		}
		return false, nil
	}

	// ディスクリプタに書けないサイズの場合は何も書き換えない
	if _, err := descriptor.FormatSize(int64(fix.NewSize)); err != nil {
		return false, ddperrors.NewStageError(ddperrors.StageCDText, path, err)
	}

	a.logger.Infof("First 0x%02x packet contains '%s', removing second at position %d...", cdtext.PackTypeGenre, cdtext.ClassicalTag, fix.RemovedAt)
	result.RemovedAt = fix.RemovedAt

	if a.config.DryRun {
		return true, nil
	}

	if err := a.fs.WriteFile(path, fix.Data, fileutil.Perm(a.fs, path)); err != nil {
		return false, ddperrors.NewStageError(ddperrors.StageCDText, path, fmt.Errorf("%w: %w", ErrWriteFile, err))
	}
	a.logger.Infof("Packet successfully removed.")

	info, err := a.fs.Stat(path)
	if err != nil {
		return false, ddperrors.NewStageError(ddperrors.StageCDText, path, fmt.Errorf("%w: %w", ErrReadFile, err))
	}
	result.NewSize = info.Size()

	return true, nil
}

// checkContext はコンテキストがキャンセルされていないか確認します
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
