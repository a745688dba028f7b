package db

import (
	"fmt"
	"net/url"
	"time"

	"github.com/crewhq/crewhq-backend/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/sirupsen/logrus"
)

// InitDB initializes the PostgreSQL database connection with connection pooling using the provided logger and config.
// Returns a *sqlx.DB instance for database operations. Ensures the connection is valid before returning.
func InitDB(logger *logrus.Logger, config *config.Config) *sqlx.DB {
	// Build the PostgreSQL connection URL from config values
	// URL-encode the password to handle special characters
	encodedPassword := url.QueryEscape(config.DBPassword)
	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		config.DBUser, encodedPassword, config.DBHost, config.DBPort, config.DBName)

	// Open a new database connection
	conn, err := sqlx.Open("postgres", dbURL)
	if err != nil {
		logger.Fatal("Cannot open DB: ", err)
	}

	// Configure connection pooling settings
	configureConnectionPool(conn, config, logger)

	// Ping the database to ensure the connection is valid
	if err := conn.Ping(); err != nil {
		logger.Fatal("Cannot ping DB: ", err)
	}

	// Log connection pool configuration
	logger.WithFields(logrus.Fields{
		"max_open_conns":     config.DBMaxOpenConns,
		"max_idle_conns":     config.DBMaxIdleConns,
		"conn_max_lifetime":  fmt.Sprintf("%dm", config.DBConnMaxLifetime),
		"conn_max_idle_time": fmt.Sprintf("%dm", config.DBConnMaxIdleTime),
	}).Info("Database connection pool configured")

	// Return the database connection for use by repositories and services
	return conn
}

// configureConnectionPool sets up the connection pool with optimal settings for the environment
func configureConnectionPool(db *sqlx.DB, config *config.Config, logger *logrus.Logger) {
	// Set maximum number of open connections to the database
	db.SetMaxOpenConns(config.DBMaxOpenConns)

	// Set maximum number of idle connections in the pool
	db.SetMaxIdleConns(config.DBMaxIdleConns)

	// Set maximum amount of time a connection may be reused
	// This helps prevent issues with stale connections
	db.SetConnMaxLifetime(time.Duration(config.DBConnMaxLifetime) * time.Minute)

	// Set maximum amount of time an idle connection may be reused
	db.SetConnMaxIdleTime(time.Duration(config.DBConnMaxIdleTime) * time.Minute)

	// Log the configuration for debugging
	logger.WithFields(logrus.Fields{
		"environment":    config.Env,
		"max_open_conns": config.DBMaxOpenConns,
		"max_idle_conns": config.DBMaxIdleConns,
	}).Debug("Database connection pool settings applied")
}

// GetConnectionStats returns current connection pool statistics for monitoring
func GetConnectionStats(db *sqlx.DB) map[string]interface{} {
	stats := db.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration.String(),
		"max_idle_closed":      stats.MaxIdleClosed,
		"max_lifetime_closed":  stats.MaxLifetimeClosed,
	}
}
