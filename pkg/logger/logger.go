package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-edb/pkg/settings"
)

const (
	defaultMaxSize    = 100 // MB
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days
)

// New builds a JSON zap logger from cfg. Output goes to stdout and, when
// FileLogName is set, to a size-rotated file as well.
func New(cfg *settings.Logger) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	}
	if cfg.FileLogName != "" {
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(newRotator(cfg)), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

func newRotator(cfg *settings.Logger) *lumberjack.Logger {
	r := &lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	if r.MaxSize == 0 {
		r.MaxSize = defaultMaxSize
	}
	if r.MaxBackups == 0 {
		r.MaxBackups = defaultMaxBackups
	}
	if r.MaxAge == 0 {
		r.MaxAge = defaultMaxAge
	}
	return r
}
