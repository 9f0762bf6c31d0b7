package config

import (
	"log"
	"os"
	"time"
)

const (
	defaultPort      = "8080"
	defaultDSN       = "coworking.db"
	defaultJWTSecret = "change-me-jwt-secret"
	defaultJWTTTL    = "24h"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration
	GinMode     string
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseDSN: getEnv("DATABASE_DSN", defaultDSN),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		JWTTTL:      parseDurationEnv("JWT_TTL", defaultJWTTTL),
		GinMode:     getEnv("GIN_MODE", "debug"),
	}

	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("config: JWT_SECRET is not set, using the insecure default")
	}
	return cfg
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(name, fallback string) time.Duration {
	raw := getEnv(name, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: invalid %s=%q, falling back to %s", name, raw, fallback)
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
