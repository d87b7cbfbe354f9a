package logger

import "log/slog"

// Interface is the logger abstraction injected into use cases and services
// so tests can substitute a silent implementation.
type Interface interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	With(args ...any) Interface
	Named(name string) Interface
}

type slogLogger struct {
	logger *slog.Logger
}

func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return &slogLogger{logger: slogLog}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{logger: l.logger.With("logger", name)}
}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() Interface {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}
func (nopLogger) Infow(string, ...interface{})  {}
func (nopLogger) Warnw(string, ...interface{})  {}
func (nopLogger) Errorw(string, ...interface{}) {}
func (n nopLogger) With(...any) Interface       { return n }
func (n nopLogger) Named(string) Interface      { return n }
