package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/chamada/apps/api/echo"
	"github.com/trezcool/chamada/core"
	"github.com/trezcool/chamada/core/attendance"
	logsvc "github.com/trezcool/chamada/services/logger"
	notifysvc "github.com/trezcool/chamada/services/notify"
	inmemdb "github.com/trezcool/chamada/storage/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	// set up roster
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening roster: %v", err), err)
	}
	roster := inmemdb.NewStudentRepository(db)
	if conf.SeedRoster {
		if err = inmemdb.Seed(roster); err != nil {
			logger.Fatal(fmt.Sprintf("seeding roster: %v", err), err)
		}
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator(conf.Locale)
	core.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)
	if err = attendance.RegisterMessages(translator); err != nil {
		logger.Fatal(fmt.Sprintf("registering messages: %v", err), err)
	}

	session := attendance.NewSession(
		attendance.SessionDeps{
			Roster:     roster,
			Notifier:   notifysvc.NewConsoleService(conf.AppName),
			Logger:     logger,
			Validate:   validate,
			Translator: translator,
		},
		attendance.Today(),
	)
	if err = session.OnDateChange(session.SelectedDate()); err != nil {
		logger.Fatal(fmt.Sprintf("initializing session: %v", err), err)
	}

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.Publish("attendance_version", expvar.Func(func() interface{} {
		return session.Store().Version()
	}))

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		&echoapi.Deps{
			Conf:       conf,
			Logger:     logger,
			Session:    session,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
