package http_api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/logger"
)

const (
	// ShutdownTimeout is the maximum time to wait for graceful shutdown
	ShutdownTimeout = 10 * time.Second

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// HTTPServer is the HTTP server struct that will serve the API
type HTTPServer struct {
	// logger is the logger instance
	logger *logger.Logger

	// router is the HTTP router
	router *gin.Engine
	// port is the port on which the server will listen
	port int

	// server is the underlying HTTP server
	server *http.Server

	// relay is the main application struct
	relay models.RelayI
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags every request with an id, reusing the caller's
// X-Request-ID when present.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// NewHTTPServer creates a new HTTP server instance
func NewHTTPServer(relay models.RelayI, port int, logger *logger.Logger) models.APIServer {
	router := gin.Default()

	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	server := &HTTPServer{
		router: router,
		port:   port,
		relay:  relay,
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("0.0.0.0:%v", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	// Define routes
	server.routes()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return server
}

// Handler returns the router serving the API.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server. It returns at once if Shutdown already ran.
func (s *HTTPServer) Start() {
	s.logger.Info("Starting HTTP server", "address", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Fatal("Failed to start the HTTP server", "error", err)
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	s.logger.Info("HTTP server shut down successfully")
	return nil
}

// requestLogger returns the server logger tagged with the request id.
func (s *HTTPServer) requestLogger(c *gin.Context) *logger.Logger {
	return s.logger.With(requestIDKey, c.GetString(requestIDKey))
}
