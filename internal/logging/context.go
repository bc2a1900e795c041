package logging

import "context"

type loggerKey struct{}

// With returns a new context carrying logger.
func With(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// From returns the logger carried by ctx, or the default logger.
func From(ctx context.Context) Logger {
	if ctx == nil {
		return DefaultLogger()
	}
	logger, ok := ctx.Value(loggerKey{}).(Logger)
	if !ok {
		return DefaultLogger()
	}
	return logger
}
