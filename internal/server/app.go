// Package server initializes and runs the adventure tracker backend.
// It wires the document store, the image service and the HTTP API, and
// handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/adventures/internal/logging"
	"github.com/dmitrijs2005/adventures/internal/server/config"
	"github.com/dmitrijs2005/adventures/internal/server/httpapi"
	"github.com/dmitrijs2005/adventures/internal/server/images"
	"github.com/dmitrijs2005/adventures/internal/server/repositories/adventures"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *adventures.Store
	images *images.S3Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefault()

	store := adventures.NewStore(c.DatabaseDSN)

	imgs := images.NewS3Service(images.Config{
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})

	return &App{config: c, logger: logger, store: store, images: imgs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	handler := httpapi.NewHandler(app.store, app.images, app.logger)
	router := httpapi.NewRouter(handler, []byte(app.config.SecretKey), app.config.AdminEmails, app.logger)

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "server shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "http server listening", "addr", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}
}
