package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-edb/pkg/settings"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", "debug", zapcore.DebugLevel, false},
		{"info", "info", zapcore.InfoLevel, false},
		{"empty_is_info", "", zapcore.InfoLevel, false},
		{"warn", "warn", zapcore.WarnLevel, false},
		{"error", "error", zapcore.ErrorLevel, false},
		{"unknown", "loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(&settings.Logger{LogLevel: tt.level})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edb.log")
	log, err := New(&settings.Logger{LogLevel: "info", FileLogName: path})
	require.NoError(t, err)

	log.Info("table opened")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"table opened"`)
}

func TestNewRotator_Defaults(t *testing.T) {
	r := newRotator(&settings.Logger{FileLogName: "x.log"})
	assert.Equal(t, defaultMaxSize, r.MaxSize)
	assert.Equal(t, defaultMaxBackups, r.MaxBackups)
	assert.Equal(t, defaultMaxAge, r.MaxAge)

	r = newRotator(&settings.Logger{FileLogName: "x.log", MaxSize: 5, MaxBackups: 1, MaxAge: 2, Compress: true})
	assert.Equal(t, 5, r.MaxSize)
	assert.Equal(t, 1, r.MaxBackups)
	assert.Equal(t, 2, r.MaxAge)
	assert.True(t, r.Compress)
}

func TestNop(t *testing.T) {
	assert.False(t, Nop().Core().Enabled(zapcore.ErrorLevel))
}
