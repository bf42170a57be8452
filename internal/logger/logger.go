package logger

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	l *zap.SugaredLogger
}

type Conf struct {
	Production bool
	Level      string
}

func New(conf Conf) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	if conf.Production {
		cfg = zap.NewProductionConfig()
	}

	if conf.Level != "" {
		level, err := zapcore.ParseLevel(conf.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", conf.Level, err)
		}

		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{l: zl.Sugar()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{l: zap.NewNop().Sugar()}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Errorf(format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Infof(format, v...)
}

func (l *Logger) LogDebug(msg string, keysAndValues ...any) {
	l.l.Debugw(msg, keysAndValues...)
}

func (l *Logger) Sync() {
	_ = l.l.Sync()
}

// StdLogger adapts the logger for APIs that want a *log.Logger, such as
// http.Server.ErrorLog. Lines are logged at error level.
func (l *Logger) StdLogger() (*log.Logger, error) {
	return zap.NewStdLogAt(l.l.Desugar(), zap.ErrorLevel)
}
