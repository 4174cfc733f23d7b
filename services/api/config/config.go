package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the demo API.
type Config struct {
	Port        int
	SessionTTL  time.Duration
	CORSOrigin  string
	ReportBonus int
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:        8080,
		SessionTTL:  30 * time.Minute,
		CORSOrigin:  "*",
		ReportBonus: 25,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	}

	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		if ttl, err := time.ParseDuration(ttlStr); err == nil && ttl > 0 {
			cfg.SessionTTL = ttl
		} else {
			return cfg, fmt.Errorf("invalid SESSION_TTL: %s", ttlStr)
		}
	}

	if origin := os.Getenv("CORS_ALLOW_ORIGIN"); origin != "" {
		cfg.CORSOrigin = origin
	}

	if bonusStr := os.Getenv("REPORT_BONUS_POINTS"); bonusStr != "" {
		if bonus, err := strconv.Atoi(bonusStr); err == nil && bonus > 0 {
			cfg.ReportBonus = bonus
		} else {
			return cfg, fmt.Errorf("invalid REPORT_BONUS_POINTS: %s", bonusStr)
		}
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
