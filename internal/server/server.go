// Package server is the HTTP glue around the tick pipeline. It holds no
// business logic: handlers decode requests, call the ingestor and encode
// its results.
package server

import (
	"time"

	"tradepipe/config"
	"tradepipe/internal/market/ingest"
	"tradepipe/pkg/storage/postgres"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg      config.ServerConfig
	ingestor *ingest.Ingestor
	db       *postgres.Client // nil when persistence is disabled
	logger   *zap.Logger
	router   *gin.Engine
}

func New(cfg config.ServerConfig, ingestor *ingest.Ingestor, db *postgres.Client, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:      cfg,
		ingestor: ingestor,
		db:       db,
		logger:   logger,
		router:   gin.New(),
	}

	s.router.Use(gin.Recovery(), s.requestLogger())

	api := s.router.Group("/api")
	{
		api.POST("/webhook", s.handleWebhook)
		api.GET("/stats", s.handleStats)
		api.GET("/recent_trades", s.handleRecentTrades)
		api.GET("/health", s.handleHealth)
	}

	return s
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	s.logger.Info("http server listening", zap.String("addr", s.cfg.Addr))
	return s.router.Run(s.cfg.Addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
