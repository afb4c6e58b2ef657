package logger

import "github.com/avicd/go-utilx/logx"

var logger logx.Logger

func init() {
	logger = logx.Default()
}

func IsDebug() bool {
	return logx.DEBUG >= logger.GetLevel()
}

// Use swaps the backing logger, e.g. to route engine messages into an
// application's own sink.
func Use(nlog logx.Logger) {
	logger = nlog
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warn(args ...any) {
	logger.Warn(args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
