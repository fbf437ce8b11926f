// Command server runs the squirreld HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oakhollow/squirreld/internal/config"
	"github.com/oakhollow/squirreld/internal/handler"
	"github.com/oakhollow/squirreld/internal/logger"
	"github.com/oakhollow/squirreld/internal/middleware"
	"github.com/oakhollow/squirreld/internal/repository"
	"github.com/oakhollow/squirreld/internal/router"
	"github.com/oakhollow/squirreld/internal/server"
	"github.com/oakhollow/squirreld/internal/service"
)

// shutdownTimeout bounds how long inflight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// config.New is fatal on bad config, but keep the guard for the
		// error-returning path.
		os.Exit(1)
	}

	log := logger.New(cfg)

	s, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}
}
