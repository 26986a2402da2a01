package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/farecast/api"
	"github.com/Domenick1991/farecast/config"
	"github.com/Domenick1991/farecast/internal/service/pricing"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Run starts the HTTP server and blocks until the context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, svc pricing.PricingUseCase, artifactFiles []string, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewHandler(cfg, svc, artifactFiles, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("address", cfg.HTTP.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout())
		defer cancel()
		log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewHandler wires the page, the JSON API and the health probe onto one gin engine.
func NewHandler(cfg *config.Config, svc pricing.PricingUseCase, artifactFiles []string, log *zap.Logger) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(log))
	api.LoadTemplates(router)

	api.NewPageHandler(svc, artifactFiles, log).Register(router)
	api.NewHealthHandler(svc).Register(router)

	v1 := router.Group("/api/v1")
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		v1.Use(cors.New(cors.Config{
			AllowOrigins: cfg.HTTP.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			MaxAge:       12 * time.Hour,
		}))
	}
	api.NewPredictionHandler(svc, log).Register(v1)

	return router
}
