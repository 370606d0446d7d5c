package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openbarangay/registry/internal/api/middleware"
	"github.com/openbarangay/registry/internal/api/rest"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/reference"
	"github.com/openbarangay/registry/internal/registrar"
	"github.com/openbarangay/registry/internal/vault"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	JWTPublicKey string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	registrar  registrar.Service
	reference  reference.Service
	vault      vault.Vault
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, reg registrar.Service, ref reference.Service, v vault.Vault) *Server {
	return &Server{
		config:    cfg,
		registrar: reg,
		reference: ref,
		vault:     v,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	// Create REST handler
	restHandler := rest.NewHandler(s.config.Debug, s.registrar, s.reference, s.vault)

	// Setup REST routes
	authCfg := middleware.AuthConfig{JWTPublicKey: s.config.JWTPublicKey}
	rest.SetupRoutes(router, restHandler, authCfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
