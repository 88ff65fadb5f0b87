// Package logging はzapを使ったロガーの生成を行います
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New はコンソール形式のロガーを作成します。
// debugがtrueの場合はDebugレベル、それ以外はInfoレベルで出力します
func New(debug bool, w zapcore.WriteSyncer) *zap.SugaredLogger {
	if w == nil {
		w = zapcore.Lock(os.Stdout)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level.SetLevel(zap.DebugLevel)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), w, level)
	return zap.New(core).Sugar()
}

// Nop は何も出力しないロガーを返します
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
