package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/gradmap/gradmap/apps/api/echo"
	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/advisor"
	"github.com/gradmap/gradmap/core/course"
	"github.com/gradmap/gradmap/core/faculty"
	"github.com/gradmap/gradmap/core/plan"
	advisorsvc "github.com/gradmap/gradmap/services/advisor"
	catalogsvc "github.com/gradmap/gradmap/services/catalog"
	emailsvc "github.com/gradmap/gradmap/services/email"
	logsvc "github.com/gradmap/gradmap/services/logger"
	openalexsvc "github.com/gradmap/gradmap/services/openalex"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up external collaborators
	catalogClient := catalogsvc.NewClient(conf)
	openAlexClient := openalexsvc.NewClient(conf)

	var advisorClient advisor.Client
	if conf.Advisor.APIKey == "" {
		logger.Warn("advisor API key not set; serving canned recommendations")
		advisorClient = advisorsvc.NewDummyClient()
	} else {
		gemini, err := advisorsvc.NewGeminiClient(context.Background(), conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up advisor: %v", err), err)
		}
		advisorClient = gemini
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// set up services
	courseSvc := course.NewService(catalogClient)
	planSvc := plan.NewService(
		plan.NewStore(planStartYear(time.Now())),
		plan.Requirements{
			TotalCredits:    conf.Degree.TotalCredits,
			HubUnits:        conf.Degree.HubUnits,
			MinSemesterLoad: conf.Degree.MinSemesterLoad,
		},
	)
	advisorSvc := advisor.NewService(advisorClient, courseSvc, conf.Advisor.Timeout, logger)
	facultySvc := faculty.NewService(catalogClient, openAlexClient, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			CourseSvc:  courseSvc,
			PlanSvc:    planSvc,
			AdvisorSvc: advisorSvc,
			FacultySvc: facultySvc,
			MailSvc:    mailSvc,
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
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shut down and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// planStartYear picks the Fall the default plan begins at: the current year,
// or the previous one during Spring when that Fall term is already underway.
func planStartYear(now time.Time) int {
	if now.Month() < time.June {
		return now.Year() - 1
	}
	return now.Year()
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
