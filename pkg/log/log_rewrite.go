package log

import (
	"context"

	"go.uber.org/zap"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/16 15:21
 * @file: log_rewrite.go
 * @description: global logger shortcuts
 */

type fieldsKey struct{}

// NewContext returns a copy of ctx carrying extra key/value pairs that
// WithContext attaches to every entry.
func NewContext(ctx context.Context, keysAndValues ...any) context.Context {
	prev, _ := ctx.Value(fieldsKey{}).([]any)
	fields := make([]any, 0, len(prev)+len(keysAndValues))
	fields = append(fields, prev...)
	fields = append(fields, keysAndValues...)
	return context.WithValue(ctx, fieldsKey{}, fields)
}

// WithContext returns the global logger decorated with the fields stored by NewContext.
func WithContext(ctx context.Context) *zap.SugaredLogger {
	s := global()
	if ctx == nil {
		return s
	}
	if fields, ok := ctx.Value(fieldsKey{}).([]any); ok && len(fields) > 0 {
		return s.With(fields...)
	}
	return s
}

func Info(args ...any) {
	global().Info(args...)
}

func Infof(format string, args ...any) {
	global().Infof(format, args...)
}

func Infow(msg string, keysAndValues ...any) {
	global().Infow(msg, keysAndValues...)
}

func Debug(args ...any) {
	global().Debug(args...)
}

func Debugf(format string, args ...any) {
	global().Debugf(format, args...)
}

func Debugw(msg string, keysAndValues ...any) {
	global().Debugw(msg, keysAndValues...)
}

func Warn(args ...any) {
	global().Warn(args...)
}

func Warnf(format string, args ...any) {
	global().Warnf(format, args...)
}

func Warnw(msg string, keysAndValues ...any) {
	global().Warnw(msg, keysAndValues...)
}

func Error(args ...any) {
	global().Error(args...)
}

func Errorf(format string, args ...any) {
	global().Errorf(format, args...)
}

func Errorw(msg string, keysAndValues ...any) {
	global().Errorw(msg, keysAndValues...)
}
