package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable that enables file logging.
const EnvVar = "BOXLAYOUT_DEBUG"

var (
	mu     sync.Mutex
	logger *zap.Logger
	sink   *lumberjack.Logger
	loaded bool
)

// Init starts debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	if sink != nil {
		_ = sink.Close()
	}
	sink = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(sink), zap.DebugLevel)
	logger = zap.New(core).Named("boxlayout")
	loaded = true
	return nil
}

// Logger returns the shared debug logger. On first use it honours
// BOXLAYOUT_DEBUG; without it the logger discards everything.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if !loaded {
		loaded = true
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "boxlayout: %v\n", err)
			}
		}
	}
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Enabled reports whether a file sink is active.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return sink != nil
}

// Close flushes and closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if sink == nil {
		return nil
	}
	_ = logger.Sync()
	err := sink.Close()
	sink = nil
	logger = nil
	return err
}
