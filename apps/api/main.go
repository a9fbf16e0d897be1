package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/shuleni/kazi/apps/api/echo"
	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/homework"
	"github.com/shuleni/kazi/core/submission"
	"github.com/shuleni/kazi/core/user"
	emailsvc "github.com/shuleni/kazi/services/email"
	sendgridsvc "github.com/shuleni/kazi/services/email/sendgrid"
	logsvc "github.com/shuleni/kazi/services/logger"
	"github.com/shuleni/kazi/storage/mongodb"
)

func main() {
	conf := core.Conf

	// set up loggers
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		rollbarLogger := logsvc.NewRollbarLogger(std, conf)
		rollbarLogger.Enable(true)
		defer rollbarLogger.Close()
		logger = rollbarLogger
	}

	// set up DB
	db, err := mongodb.Open(conf.Database)
	errAndDie(err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect database", err)
		}
	}()
	errAndDie(mongodb.EnsureIndexes(context.Background(), db))

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(std)
	} else {
		mailSvc = sendgridsvc.NewService(conf.SendgridAPIKey, conf.AppName, conf.DefaultFromEmail, logger)
	}
	usrRepo := mongodb.NewUserRepository(db)
	hwRepo := mongodb.NewHomeworkRepository(db)
	usrSvc := user.NewService(usrRepo, mailSvc, logger)
	hwSvc := homework.NewService(hwRepo)
	subSvc := submission.NewService(mongodb.NewSubmissionRepository(db), hwRepo)

	// start API server
	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:          fmt.Sprintf(":%d", conf.Server.Port),
			UserSvc:       usrSvc,
			HomeworkSvc:   hwSvc,
			SubmissionSvc: subSvc,
			Logger:        logger,
			SignalShutdown: func() {
				shutdown <- syscall.SIGTERM
			},
		},
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		logger.Error("server error", err)
		os.Exit(1)

	case sig := <-shutdown:
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.Stop(ctx); err != nil {
			logger.Error("could not stop server gracefully", err)
		}
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
