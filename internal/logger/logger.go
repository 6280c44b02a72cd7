// Package logger строит *slog.Logger процесса: charmbracelet/log как
// handler, ротация файла через lumberjack.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName имя файла лога в Config.Dir
const FileName = "habittracker.log"

// Config настройки логгера
type Config struct {
	// Mirror получает копию записей в режиме debug (обычно os.Stderr)
	Mirror io.Writer
	Dir    string
	Level  string // debug, info, warn, error
}

// New creates the process logger. The returned close function flushes and
// closes the log file.
func New(cfg Config) (*slog.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, FileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	var w io.Writer = file
	debug := level <= log.DebugLevel
	if debug && cfg.Mirror != nil {
		w = io.MultiWriter(cfg.Mirror, file)
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "habittracker",
		ReportTimestamp: true,
		ReportCaller:    debug,
		Formatter:       log.LogfmtFormatter,
	})

	return slog.New(handler), file.Close, nil
}
