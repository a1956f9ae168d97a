// Package api exposes the backoffice engine over HTTP: a single command
// endpoint plus health surfaces for the process and the integration queue.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atlasfibra/backoffice/pkg/commands"
	"github.com/atlasfibra/backoffice/pkg/database"
	"github.com/atlasfibra/backoffice/pkg/scheduler"
)

// Server is the HTTP front of the engine. Every mutation goes through the
// command dispatcher; the server itself holds no domain logic.
type Server struct {
	dispatcher *commands.Dispatcher
	dbClient   *database.Client
	pool       *scheduler.WorkerPool

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the API server. The worker pool is optional; without it
// the queue health endpoint reports unavailable.
func NewServer(dispatcher *commands.Dispatcher, dbClient *database.Client, pool *scheduler.WorkerPool) *Server {
	if dispatcher == nil {
		panic("NewServer: dispatcher must not be nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), securityHeaders())

	s := &Server{
		dispatcher: dispatcher,
		dbClient:   dbClient,
		pool:       pool,
		engine:     engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.healthHandler)

	v1 := s.engine.Group("/api/v1")
	v1.POST("/commands", s.commandHandler)
	v1.GET("/queue/health", s.queueHealthHandler)
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
