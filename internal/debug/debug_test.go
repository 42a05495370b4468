package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	require.NoError(t, Init(path))
	assert.True(t, Enabled())

	Logger().Debug("computed nodes", zap.Int("nodes", 3))
	Logger().Debug("second record")
	require.NoError(t, Close())
	assert.False(t, Enabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"computed nodes"`)
	assert.Contains(t, lines[0], `"nodes":3`)
	assert.Contains(t, lines[0], `"logger":"boxlayout"`)
	assert.Contains(t, lines[1], `"msg":"second record"`)
}

func TestClose_WithoutInit(t *testing.T) {
	assert.NoError(t, Close())
	assert.NoError(t, Close())
}

func TestLogger_DisabledIsNop(t *testing.T) {
	require.NoError(t, Close())
	mu.Lock()
	loaded = true
	mu.Unlock()

	l := Logger()
	require.NotNil(t, l)
	l.Debug("dropped")
	assert.False(t, Enabled())
}

func TestNew(t *testing.T) {
	type tc struct {
		cfg       Config
		wantDebug bool
		wantJSON  bool
	}

	tests := map[string]tc{
		"info console":    {cfg: Config{Level: "info"}},
		"debug console":   {cfg: Config{Level: "debug"}, wantDebug: true},
		"unknown is info": {cfg: Config{Level: "loud"}},
		"json output":     {cfg: Config{Level: "warn", Format: "json"}, wantJSON: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.cfg, zapcore.AddSync(&buf))
			l.Debug("detail")
			l.Warn("careful", zap.Int("nodes", 2))
			require.NoError(t, l.Sync())

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "detail"))
			assert.Contains(t, out, "careful")
			if tt.wantJSON {
				assert.Contains(t, out, `"nodes":2`)
			} else {
				assert.Contains(t, out, "WARN")
			}
		})
	}
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.log")
	var buf bytes.Buffer
	l := New(Config{Level: "info", File: path}, zapcore.AddSync(&buf))
	l.Info("laid out", zap.String("file", "a.yaml"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"file":"a.yaml"`)
	assert.Contains(t, buf.String(), "laid out")
}
