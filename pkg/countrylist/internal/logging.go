package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls the rotating log file.
type LogOptions struct {
	Path       string // Full path including filename; parent directories are created
	MaxSizeMB  int    // Rotate after this many megabytes
	MaxBackups int    // Rotated files to keep
}

var (
	logOptions = LogOptions{Path: filepath.Join("logs", "countrylist.log"), MaxSizeMB: 5, MaxBackups: 3}
	logFile    *lumberjack.Logger

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogOptions replaces the log file settings. Call before the first logger
// is requested.
func SetLogOptions(opts LogOptions) {
	if opts.Path != "" {
		logOptions.Path = opts.Path
	}
	if opts.MaxSizeMB > 0 {
		logOptions.MaxSizeMB = opts.MaxSizeMB
	}
	if opts.MaxBackups > 0 {
		logOptions.MaxBackups = opts.MaxBackups
	}
}

// SetLogPath sets the full path for the log file, including filename.
func SetLogPath(path string) {
	SetLogOptions(LogOptions{Path: path})
}

func setup() {
	setupOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(logOptions.Path), 0755); err != nil {
			multiWriter = os.Stdout
			return
		}

		logFile = &lumberjack.Logger{
			Filename:   logOptions.Path,
			MaxSize:    logOptions.MaxSizeMB,
			MaxBackups: logOptions.MaxBackups,
		}

		multiWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	setup()
	return slog.New(slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{Level: level}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger for SDL and device plumbing. It is
// quiet (error only) unless raised with SetInternalLogLevel.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newJSONLogger(internalLevelVar)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// SetRawLogLevel parses a level name; unknown names select info.
func SetRawLogLevel(rawLevel string) {
	level := slog.LevelInfo

	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	SetLogLevel(level)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
