package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client"
	"markskeeper/internal/app/client/config"
	"markskeeper/internal/app/server/api"
	"markskeeper/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	app, err := client.New(conf, log)
	if err != nil {
		log.Error("failed to init app", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              conf.HTTPAddress,
		Handler:           api.New(app, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server started", slog.String("address", conf.HTTPAddress), slog.String("storage", conf.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	log.Info("server stopped")
}
