package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"

	"github.com/shiroemons/ddpclassicalfix/internal/ddp/app"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/config"
	"github.com/shiroemons/ddpclassicalfix/internal/ddp/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run はコマンドを実行して終了コードを返します
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// コマンドライン引数の解析
	cfg, err := config.ParseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if errors.Is(err, config.ErrUsage) {
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// バージョン表示の処理
	if config.HandleVersion(cfg.ShowVersion, stdout) {
		return 0
	}

	logger := logging.New(cfg.DebugMode, zapcore.AddSync(stdout))
	defer func() { _ = logger.Sync() }()

	// アプリケーションの実行
	application := app.NewWithOptions(cfg, app.Options{Logger: logger})
	report, err := application.Run(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if report.Changed {
		fmt.Fprintln(stdout, "Changes were made.")
	} else {
		fmt.Fprintln(stdout, "No changes were necessary.")
	}
	return 0
}
