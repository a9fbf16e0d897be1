package logsvc

import (
	"log"

	"github.com/shuleni/kazi/core"
)

// StdLogger logs everything to the standard logger; used in debug/test mode.
type StdLogger struct {
	std *log.Logger
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger) *StdLogger {
	return &StdLogger{std: std}
}

func (l StdLogger) Enable(bool) {}

func (l StdLogger) Info(msg string, args ...interface{}) {
	l.log("INFO", msg, args)
}

func (l StdLogger) Error(msg string, err error, args ...interface{}) {
	if err != nil {
		args = append(args, "error", err)
	}
	l.log("ERROR", msg, args)
}

func (l StdLogger) log(level, msg string, args []interface{}) {
	if len(args) > 0 {
		l.std.Printf("%s: %s %v", level, msg, args)
		return
	}
	l.std.Printf("%s: %s", level, msg)
}
