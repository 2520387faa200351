// Package logger, uygulama genelinde kullanılan zap logger'ı yönetir.
//
// Global L değişkeni main.go'da Init ile yapılandırılır. Init çağrılmadan
// önce (ör: testlerde) L bir no-op logger'dır: nil pointer panic olmaz.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L, global logger instance'ı.
var L = zap.NewNop()

// Init, logger'ı seviye ve moda göre kurar.
//
// level: "debug", "info", "warn", "error". Geçersizse "info" kullanılır.
// production: true ise JSON çıktı, false ise renkli console çıktı.
func Init(level string, production bool) error {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
		fmt.Fprintf(os.Stderr, "warning: invalid log level %q, using info: %v\n", level, err)
	}

	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	L = l

	L.Info("logger initialized", zap.String("level", zapLevel.String()), zap.Bool("production", production))
	return nil
}

// Sync, buffer'daki log kayıtlarını yazar. Uygulama kapanırken çağrılmalı.
func Sync() {
	_ = L.Sync()
}
