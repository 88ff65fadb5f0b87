// Package config はddpclassicalfixコマンドの設定管理を行います
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	ddperrors "github.com/shiroemons/ddpclassicalfix/internal/ddp/errors"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/interfaces"
)

const (
	// Name はコマンド名
	Name = "DDPClassicalFix"

	// Version はコマンドのバージョン
	Version = "0.1.0"
)

// ErrUsage は引数が不正な場合のエラー。Usageはエラーとは別にprintUsageで出力します
var ErrUsage = errors.New("invalid arguments: exactly one DDP folder is required")

// Config はアプリケーションの設定を保持します
type Config struct {
	Folder      string
	DebugMode   bool
	DryRun      bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数（プログラム名を除く）を解析して設定を返します。
// -h/--help の場合はflag.ErrHelpを返します
func ParseFlags(args []string, output io.Writer) (*Config, error) {
	config := &Config{}

	fs := flag.NewFlagSet(Name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { printUsage(fs.Output()) }

	// デバッグモード
	fs.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	fs.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// ドライランモード
	fs.BoolVar(&config.DryRun, "dry-run", false, "report the changes without writing any file")
	fs.BoolVar(&config.DryRun, "n", false, "report the changes without writing any file (shorthand)")

	// バージョン表示
	fs.BoolVar(&config.ShowVersion, "version", false, "show version information")
	fs.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if config.ShowVersion {
		return config, nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, ErrUsage
	}
	config.Folder = filepath.Clean(fs.Arg(0))

	return config, nil
}

// printUsage はダブルハイフン表記のUsageを出力します
func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options] <DDP_FOLDER>\n", Name)
	fmt.Fprintln(w, "  --debug")
	fmt.Fprintln(w, "    \tenable debug output")
	fmt.Fprintln(w, "  -d\tenable debug output (shorthand)")
	fmt.Fprintln(w, "  --dry-run")
	fmt.Fprintln(w, "    \treport the changes without writing any file")
	fmt.Fprintln(w, "  -n\treport the changes without writing any file (shorthand)")
	fmt.Fprintln(w, "  --version")
	fmt.Fprintln(w, "    \tshow version information")
	fmt.Fprintln(w, "  -v\tshow version information (shorthand)")
}

// HandleVersion はバージョン表示を処理します。表示した場合はtrueを返します
func HandleVersion(showVersion bool, w io.Writer) bool {
	if showVersion {
		fmt.Fprintf(w, "%s version %s\n", Name, Version)
	}
	return showVersion
}

// Validate はDDPフォルダが存在するディレクトリかどうかを確認します
func (c *Config) Validate(fs interfaces.FileSystem) error {
	info, err := fs.Stat(c.Folder)
	if err != nil {
		return fmt.Errorf("%w: '%s'", ddperrors.ErrFolderNotFound, c.Folder)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: '%s'", ddperrors.ErrNotDirectory, c.Folder)
	}
	return nil
}
