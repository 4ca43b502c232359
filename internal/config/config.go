package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		CORS
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		URL             string
		LogLevel        string // silent, error, warn, info
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration

		// Startup schema initialisation
		InitMaxRetries int
		InitBaseDelay  time.Duration
	}
	CORS struct {
		Origins          []string
		AllowCredentials bool
	}
)

// splitList turns a comma-separated variable into a trimmed list without empty entries.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	// Database defaults
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("database_max_open_conns", 10)
	v.SetDefault("database_max_idle_conns", 5)
	v.SetDefault("database_conn_max_lifetime", "1h")
	v.SetDefault("database_init_max_retries", DefaultInitMaxRetries)
	v.SetDefault("database_init_base_delay", DefaultInitBaseDelay)

	// CORS defaults cover the usual front-end dev server ports
	v.SetDefault("cors_origins", DefaultCORSOrigins)
	v.SetDefault("cors_allow_credentials", true)

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			URL:             v.GetString("DATABASE_URL"),
			LogLevel:        v.GetString("DATABASE_LOG_LEVEL"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DATABASE_CONN_MAX_LIFETIME"),
			InitMaxRetries:  v.GetInt("DATABASE_INIT_MAX_RETRIES"),
			InitBaseDelay:   v.GetDuration("DATABASE_INIT_BASE_DELAY"),
		},
		CORS: CORS{
			Origins:          splitList(v.GetString("CORS_ORIGINS")),
			AllowCredentials: v.GetBool("CORS_ALLOW_CREDENTIALS"),
		},
	}
}
