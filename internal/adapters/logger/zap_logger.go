package logger

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dev.rubentxu.step7-service/internal/core/ports"
)

// Options configura el logger.
type Options struct {
	Level       string
	Development bool
}

// ZapLogger implementa la interfaz Logger usando zap
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger crea un logger de producción con nivel info
func NewZapLogger() (*ZapLogger, error) {
	return New(Options{Level: "info"})
}

// New crea un ZapLogger con el nivel y modo indicados
func New(opts Options) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", opts.Level)
	}

	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build zap logger")
	}
	return &ZapLogger{logger: logger.Sugar()}, nil
}

// Wrap adapta un *zap.Logger existente
func Wrap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: l.Sugar()}
}

// NewNop devuelve un logger que descarta todo, útil en tests
func NewNop() *ZapLogger {
	return Wrap(zap.NewNop())
}

// Debug implementa Logger.Debug
func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debugw(msg, args...)
}

// Info implementa Logger.Info
func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.logger.Infow(msg, args...)
}

// Warn implementa Logger.Warn
func (l *ZapLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warnw(msg, args...)
}

// Error implementa Logger.Error
func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.logger.Errorw(msg, args...)
}

// Fatal implementa Logger.Fatal
func (l *ZapLogger) Fatal(msg string, args ...interface{}) {
	l.logger.Fatalw(msg, args...)
}

// With implementa Logger.With
func (l *ZapLogger) With(args ...interface{}) ports.Logger {
	return &ZapLogger{logger: l.logger.With(args...)}
}

// Sync implementa Logger.Sync
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// Desugar expone el *zap.Logger subyacente, p.ej. para grpclog
func (l *ZapLogger) Desugar() *zap.Logger {
	return l.logger.Desugar()
}
