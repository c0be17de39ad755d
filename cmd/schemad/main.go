// Command schemad serves the schemas found in SCHEMA_DIR over HTTP.
//
//	POST /validate/{schema}  validate a JSON record (or array of records)
//	GET  /schemas            list loaded schemas and their fields
//	GET  /health             liveness probe
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formschema/pkg/config"
	"github.com/dmitrymomot/formschema/pkg/logger"
)

func main() {
	var cfg config.Service
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "schemad"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("schemad stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Service, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	schemas, err := loadSchemas(cfg.SchemaDir)
	if err != nil {
		return err
	}
	log.Info("schemas loaded", slog.Int("count", len(schemas)), slog.String("dir", cfg.SchemaDir))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newRouter(cfg, log, schemas),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("listening", slog.String("addr", cfg.Addr))

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("shutdown complete")
	return nil
}
