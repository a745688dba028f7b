package server

import (
	"fmt"
	"time"

	"github.com/crewhq/crewhq-backend/internal/checklist"
	"github.com/crewhq/crewhq-backend/internal/config"
	"github.com/crewhq/crewhq-backend/internal/db"
	"github.com/crewhq/crewhq-backend/internal/feed"
	"github.com/crewhq/crewhq-backend/internal/incident"
	"github.com/crewhq/crewhq-backend/internal/middleware"
	"github.com/crewhq/crewhq-backend/internal/presence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server for the CrewHQ backend API.
type Server struct {
	cfg    *config.Config
	log    *logrus.Logger
	engine *gin.Engine
	db     *sqlx.DB // Database connection for health checks
}

// SetupRoutes registers all API routes and middleware for the server.
// This function centralizes route registration for maintainability. Every
// business route sits behind the rate limiter and the auth middleware; the
// auth middleware runs the identity resolver before any handler fires.
func (s *Server) SetupRoutes(
	feedHandler *feed.Handler,
	presenceHandler *presence.Handler,
	checklistHandler *checklist.Handler,
	incidentHandler *incident.Handler,
	authMiddleware gin.HandlerFunc,
	rateLimiter *middleware.RateLimiter,
) {
	// Create API v1 router group
	v1 := s.engine.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())

	// All business routes require a verified identity
	protected := v1.Group("")
	protected.Use(authMiddleware)

	feed.RegisterRoutes(feedHandler, protected)
	presence.RegisterRoutes(presenceHandler, protected)
	checklist.RegisterRoutes(checklistHandler, protected)
	incident.RegisterRoutes(incidentHandler, protected)
}

// routes registers health check and other non-API routes.
func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		// Basic health check
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "CrewHQ backend is healthy",
		})
	})

	// Detailed health check with database connection pool stats
	s.engine.GET("/healthz/detailed", func(c *gin.Context) {
		// Check database connectivity
		if err := s.db.Ping(); err != nil {
			c.JSON(503, gin.H{
				"status":  "error",
				"message": "Database connection failed",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "CrewHQ backend is healthy",
			"database": gin.H{
				"status": "connected",
				"pool":   db.GetConnectionStats(s.db),
			},
			"timestamp": gin.H{
				"server_time": time.Now().UTC().Format(time.RFC3339),
			},
		})
	})
}

// New creates a new Server instance with the given config and logger.
func New(cfg *config.Config, log *logrus.Logger, dbConn *sqlx.DB) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		cfg:    cfg,
		log:    log,
		engine: engine,
		db:     dbConn,
	}
}

// Start runs the HTTP server on the configured port.
func (s *Server) Start() error {
	s.routes()
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	s.log.Infof("starting server on %s", addr)
	return s.engine.Run(addr)
}
