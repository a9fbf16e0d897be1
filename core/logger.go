package core

// Logger is any service that can record application events.
// Error args may carry a context identity (see services/logger).
type Logger interface {
	Enable(enabled bool)
	Info(msg string, args ...interface{})
	Error(msg string, err error, args ...interface{})
}
