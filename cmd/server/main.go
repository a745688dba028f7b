package main

import (
	"time"

	"github.com/crewhq/crewhq-backend/internal/auth/token"
	"github.com/crewhq/crewhq-backend/internal/checklist"
	"github.com/crewhq/crewhq-backend/internal/config"
	"github.com/crewhq/crewhq-backend/internal/db"
	"github.com/crewhq/crewhq-backend/internal/feed"
	"github.com/crewhq/crewhq-backend/internal/identity"
	"github.com/crewhq/crewhq-backend/internal/incident"
	"github.com/crewhq/crewhq-backend/internal/middleware"
	"github.com/crewhq/crewhq-backend/internal/presence"
	"github.com/crewhq/crewhq-backend/internal/server"
	"github.com/crewhq/crewhq-backend/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := utils.New(cfg)

	dbConn := db.InitDB(logger, cfg)

	// Token verifier setup
	verifier := token.NewManager(cfg.JWTSecret, time.Duration(cfg.AccessTokenDuration)*time.Minute)

	// Identity resolver, invoked by the auth middleware on every request
	identityService := identity.NewService(identity.NewPostgresRepository(dbConn), logger)

	// Business services and handlers
	feedService := feed.NewService(feed.NewPostgresRepository(dbConn), logger)
	feedHandler := feed.NewHandler(feedService, logger)

	presenceService := presence.NewService(presence.NewPostgresRepository(dbConn), logger)
	presenceHandler := presence.NewHandler(presenceService, logger)

	checklistService := checklist.NewService(checklist.NewPostgresRepository(dbConn), logger)
	checklistHandler := checklist.NewHandler(checklistService, logger)

	incidentService := incident.NewService(incident.NewPostgresRepository(dbConn), logger)
	incidentHandler := incident.NewHandler(incidentService, logger)

	authMiddleware := middleware.AuthMiddleware(verifier, identityService, logger)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rateLimiter.Close()

	s := server.New(cfg, logger, dbConn)
	s.SetupRoutes(feedHandler, presenceHandler, checklistHandler, incidentHandler, authMiddleware, rateLimiter)

	if err := s.Start(); err != nil {
		logger.Fatal("server failed to start", err)
	}
}
