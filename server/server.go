package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// SERVER — HTTP lifecycle
// ============================================================================

// New assembles the router with middleware and routes over a dataset.
func New(ds *dataset.Dataset, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(logger))
	RegisterRoutes(r, ds)
	return r
}

// Run builds the dataset once, serves it until SIGINT/SIGTERM, then shuts
// down gracefully.
func Run() {
	LoadEnv()

	level := log.InfoLevel
	if GetEnvBool("DEBUG", false) {
		level = log.DebugLevel
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	ds := dataset.Build()
	logger.Info("dataset built",
		"members", len(ds.Members),
		"worldRows", len(ds.WorldRanking),
		"year", ds.Year,
	)

	port := GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: New(ds, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
