package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration values for the application, loaded from environment variables or config files.
// This struct centralizes configuration for maintainability and testability.
type Config struct {
	Port                string   // HTTP server port
	Env                 string   // Application environment (e.g., development, production)
	DBUser              string   // Database user
	DBPort              string   // Database port
	DBHost              string   // Database host
	DBName              string   // Database name
	DBPassword          string   // Database password
	DBMaxOpenConns      int      // Maximum open database connections
	DBMaxIdleConns      int      // Maximum idle database connections
	DBConnMaxLifetime   int      // Connection max lifetime in minutes
	DBConnMaxIdleTime   int      // Connection max idle time in minutes
	JWTSecret           string   // Secret key for verifying JWTs
	AccessTokenDuration int      // Access token duration in minutes
	RateLimitRPS        float64  // Sustained requests per second per client address
	RateLimitBurst      int      // Burst size per client address
	CORSAllowedOrigins  []string // Origins allowed by the CORS layer
}

// Load reads configuration from the .env file and environment variables, returning a Config struct.
// This function enables flexible configuration for different environments (dev, prod, test).
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_USER", "crewhq_user")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PASSWORD", "crewhq")
	viper.SetDefault("DB_NAME", "crewhq")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 30)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 5)
	viper.SetDefault("ACCESS_TOKEN_DURATION", 60)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	if err := viper.ReadInConfig(); err != nil {
		// A missing .env file is fine in containerized deployments where
		// everything arrives through the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Port:                viper.GetString("PORT"),
		Env:                 viper.GetString("ENV"),
		DBUser:              viper.GetString("DB_USER"),
		DBPort:              viper.GetString("DB_PORT"),
		DBHost:              viper.GetString("DB_HOST"),
		DBName:              viper.GetString("DB_NAME"),
		DBPassword:          viper.GetString("DB_PASSWORD"),
		DBMaxOpenConns:      viper.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:      viper.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:   viper.GetInt("DB_CONN_MAX_LIFETIME"),
		DBConnMaxIdleTime:   viper.GetInt("DB_CONN_MAX_IDLE_TIME"),
		JWTSecret:           viper.GetString("JWT_SECRET"),
		AccessTokenDuration: viper.GetInt("ACCESS_TOKEN_DURATION"),
		RateLimitRPS:        viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:      viper.GetInt("RATE_LIMIT_BURST"),
		CORSAllowedOrigins:  viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
	}, nil
}
