package database

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// PoolConfig holds database connection pool configuration
type PoolConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func int32FromEnv(key string, fallback int32, min int) int32 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < min {
		slog.Warn("ignoring invalid pool setting", "key", key, "value", raw)
		return fallback
	}
	return int32(val)
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("ignoring invalid pool setting", "key", key, "value", raw)
		return fallback
	}
	return val
}

// GetPoolConfigFromEnv reads the connection and pool configuration from the environment.
//
// Environment variables:
// - POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_HOST, POSTGRES_PORT, POSTGRES_DB
// - DB_MAX_OPEN_CONNS (default: 25)
// - DB_MIN_CONNS (default: 5)
// - DB_CONN_MAX_LIFETIME, e.g. "1h" (default: 4 hours)
// - DB_CONN_MAX_IDLE_TIME, e.g. "5m" (default: 15 minutes)
func GetPoolConfigFromEnv() PoolConfig {
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	return PoolConfig{
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     port,
		DBName:   os.Getenv("POSTGRES_DB"),

		MaxOpenConns:    int32FromEnv("DB_MAX_OPEN_CONNS", 25, 1),
		MinConns:        int32FromEnv("DB_MIN_CONNS", 5, 0),
		ConnMaxLifetime: durationFromEnv("DB_CONN_MAX_LIFETIME", 4*time.Hour),
		ConnMaxIdleTime: durationFromEnv("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
	}
}
