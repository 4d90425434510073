// Package server builds the gin engine and runs it with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/routes"
	"github.com/tharatepjaiya-creator/Student-info1/internal/bootstrap"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/filestorage"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
)

// Server wraps the HTTP server around the assembled application.
type Server struct {
	app  *bootstrap.App
	http *http.Server
}

// New builds the router and server from the assembled app.
func New(app *bootstrap.App) *Server {
	if app.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	routes.Register(router, app.Controllers, app.Sessions)

	// Locally stored uploads are served straight off disk. Cloudinary refs are
	// absolute URLs and never hit this route.
	if local, ok := app.Storage.(*filestorage.LocalStorage); ok {
		router.Static("/uploads", local.BasePath())
	}

	return &Server{
		app: app,
		http: &http.Server{
			Addr:         ":" + app.Config.Server.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.app.Close()
	logger.Info().Msg("server stopped")
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
