// Package server assembles the gin engine serving the OrionDesk API.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oriondesk-dev/oriondesk/internal/api"
	"github.com/oriondesk-dev/oriondesk/internal/auth"
	"github.com/oriondesk-dev/oriondesk/internal/store"
)

type Server struct {
	router  *gin.Engine
	handler *api.Handler
}

// New builds a server around the given store. corsOrigin is the value
// sent in Access-Control-Allow-Origin; "*" allows any caller.
func New(s *store.Store, corsOrigin string) *Server {
	router := gin.Default()
	router.Use(corsMiddleware(corsOrigin))

	srv := &Server{
		router: router,
		handler: &api.Handler{
			Store: s,
			Guard: auth.NewGuard(s),
		},
	}
	srv.setupRoutes()
	return srv
}

func (s *Server) setupRoutes() {
	apiGroup := s.router.Group("/api")
	{
		apiGroup.GET("/incidents", s.handler.GetIncidents)
		apiGroup.GET("/account/:id", s.handler.GetAccount)
		apiGroup.GET("/orders", s.handler.GetOrders)
		apiGroup.GET("/orders/:orderId", s.handler.GetOrder)
	}

	s.router.GET("/health", s.handler.Health)

	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
