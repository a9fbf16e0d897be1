package echoapi

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/homework"
	"github.com/shuleni/kazi/core/submission"
	"github.com/shuleni/kazi/core/user"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		UserSvc       *user.Service
		HomeworkSvc   *homework.Service
		SubmissionSvc *submission.Service
		Logger        core.Logger

		// SignalShutdown is invoked when an integrity fault asks the process
		// to stop; optional.
		SignalShutdown func()
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := core.Conf
	validate, translator := core.NewValidator()

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.CORS())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, translator, s.opts.SignalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	_ = os.MkdirAll(conf.Server.UploadDir, 0o755)

	s.app.GET("/api", home)
	s.app.Static("/assets", conf.Server.UploadDir)
	s.app.POST("/api/upload", uploadHandler(conf.Server.UploadDir, conf.Server.MaxUploadSize))

	jwt := middleware.JWTWithConfig(newJWTConfig(conf.SecretKey))
	s.app.GET("/api/me", me, jwt)

	router := newProcedureRouter()
	registerUserProcedures(router, s.opts.UserSvc, validate)
	registerHomeworkProcedures(router, s.opts.HomeworkSvc, validate)
	registerSubmissionProcedures(router, s.opts.SubmissionSvc, validate)
	registerAuthProcedures(router, s.opts.UserSvc, validate)
	s.app.Any("/api/trpc/:procedure", router.dispatch)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Addr)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Welcome to backend!"})
}
