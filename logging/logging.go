// Package logging is the thin, level-gated logging façade used at the
// boundaries of the core packages (calc, parse, match). It deliberately
// carries no state of its own beyond a single process-wide logger and a
// global mutex-guarded level.
package logging

import (
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level mirrors the original LOGLEVEL enum, collapsed onto zap's four
// levels. The original's DEBUG1..DEBUG4 sub-levels all map to LevelDebug;
// there is no finer debug verbosity.
type Level int

// Logging levels, ascending in verbosity.
const (
	LevelNone Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

var (
	mu      sync.Mutex
	logger  *zap.SugaredLogger
	atomLvl = zap.NewAtomicLevelAt(zapcore.WarnLevel)
)

func init() {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(os.Stderr)), atomLvl)
	logger = zap.New(core).Sugar()
}

// SetLevel sets the minimum level that will be logged, process-wide.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	atomLvl.SetLevel(toZapLevel(l))
}

func toZapLevel(l Level) zapcore.Level {
	switch l {
	case LevelNone:
		return zapcore.FatalLevel + 1 // effectively disables logging
	case LevelError:
		return zapcore.ErrorLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// defaultMaxSizeMB, defaultMaxBackups, and defaultMaxAgeDays govern the
// lumberjack rotation policy applied by AddFileAppender.
const (
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 5
	defaultMaxAgeDays = 28
)

// AddFileAppender wires a rotating file sink into the logger, backed by
// lumberjack, in addition to the existing stderr console sink.
func AddFileAppender(path string) error {
	if path == "" {
		return errors.New("logging: AddFileAppender: empty path")
	}

	mu.Lock()
	defer mu.Unlock()

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(lj), atomLvl)

	consoleCfg := zap.NewProductionEncoderConfig()
	consoleCfg.TimeKey = "ts"
	consoleCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(os.Stderr), atomLvl)

	logger = zap.New(zapcore.NewTee(consoleCore, fileCore)).Sugar()
	return nil
}

// Debug logs at debug level.
func Debug(args ...interface{}) { logger.Debug(args...) }

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// Info logs at info level.
func Info(args ...interface{}) { logger.Info(args...) }

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

// Warn logs at warn level.
func Warn(args ...interface{}) { logger.Warn(args...) }

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

// Error logs at error level.
func Error(args ...interface{}) { logger.Error(args...) }

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
