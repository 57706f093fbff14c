// Package server boots the application: configuration, database, cache,
// session storage, file storage, logging sinks, and finally the HTTP server.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AhmedFathyMohamed10/crm-system/config"
	"github.com/AhmedFathyMohamed10/crm-system/internal/kernel"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/cache"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/database"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/logger"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/session"
	"github.com/AhmedFathyMohamed10/crm-system/pkg/storage"
)

// Start boots every subsystem and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, sessions fall back to memory", "error", err)
	}
	session.SelectStore()

	storage.Connect()

	if config.LogMongoURI() != "" {
		sink, err := logger.EnableMongoSink()
		if err != nil {
			logger.Warn("server: mongo log sink disabled", "error", err)
		} else {
			defer sink.Close()
		}
	}

	httpKernel := kernel.NewHTTPKernel()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           httpKernel.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
