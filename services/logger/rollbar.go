package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	rollbarerrs "github.com/rollbar/rollbar-go/errors"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/user"
)

type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(rollbarerrs.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// prepare extracts a user.User arg (if any) to set the reported person.
// expected fmt: msg | error, key/value pairs, user.User
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var usrSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		if usr, ok := arg.(user.User); ok {
			if !usrSet { // only set one User
				rollbar.SetPerson(usr.ID, usr.Name, usr.Email)
				usrSet = true
			}
		} else {
			newArgs = append(newArgs, arg)
		}
	}
	if !usrSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	l.std.Printf("INFO: %s %v", msg, args)
	rollbar.Info(l.prepare(msg, args)...)
}

func (l RollbarLogger) Error(msg string, err error, args ...interface{}) {
	l.std.Printf("ERROR: %s: %v %v", msg, err, args)
	newArgs := l.prepare(msg, args)
	if err != nil {
		newArgs = append([]interface{}{err}, newArgs...)
	}
	rollbar.Error(newArgs...)
}

func (l RollbarLogger) Close() error {
	rollbar.Close()
	return nil
}
