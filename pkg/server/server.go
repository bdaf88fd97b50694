package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	calculatehandler "github.com/re-tools/property-atlas/pkg/handlers/calculate"
	scenariohandler "github.com/re-tools/property-atlas/pkg/handlers/scenario"
	atlasmiddleware "github.com/re-tools/property-atlas/pkg/server/middleware"
	scenariosvc "github.com/re-tools/property-atlas/pkg/services/scenario"
	"github.com/re-tools/property-atlas/pkg/store/cache"
	"github.com/re-tools/property-atlas/pkg/store/fees"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Fees      fees.Store
	Cache     cache.Cache
	Scenarios *scenariosvc.Service
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	calcHandler := calculatehandler.NewHandler(config.Dependencies.Fees, config.Dependencies.Cache)
	scHandler := scenariohandler.NewHandler(config.Dependencies.Scenarios)

	router := chi.NewRouter()

	router.Use(atlasmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/calculate", calcHandler.Calculate)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", scHandler.ListScenarios)
			r.Post("/", scHandler.SaveScenario)
			r.Get("/{id}", scHandler.GetScenario)
			r.Delete("/{id}", scHandler.DeleteScenario)
		})
	})

	router.Handle("/metrics", promhttp.Handler())

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
