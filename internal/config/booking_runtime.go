package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultPendingRetention = "30m"
	defaultSweepInterval    = "5m"
	defaultRequestTimeout   = "10s"
	defaultLockTTL          = "10s"
	defaultCurrency         = "eur"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultJWTAccessTTL     = "24h"
)

// BookingRuntimeConfig carries the engine's tunables: how long an unpaid
// pending reservation holds its slot, how often the sweeper reclaims, and
// the slot-lock parameters.
type BookingRuntimeConfig struct {
	AppEnv string

	PendingRetention time.Duration
	SweepInterval    time.Duration
	RequestTimeout   time.Duration

	LockTTL   time.Duration
	RedisAddr string // empty = in-process mutex locker

	Currency string

	JWTSecret    string
	JWTAccessTTL time.Duration
}

func LoadBookingRuntimeConfig() (*BookingRuntimeConfig, error) {
	cfg := &BookingRuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	var err error
	cfg.PendingRetention, err = parseDurationEnv("PENDING_RETENTION", defaultPendingRetention)
	if err != nil {
		return nil, err
	}
	cfg.SweepInterval, err = parseDurationEnv("SWEEP_INTERVAL", defaultSweepInterval)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout, err = parseDurationEnv("REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, err
	}
	cfg.LockTTL, err = parseDurationEnv("SLOT_LOCK_TTL", defaultLockTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.Currency = strings.ToLower(strings.TrimSpace(getEnv("CURRENCY", defaultCurrency)))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("booking runtime config: pending_retention=%s sweep_interval=%s locker=%s",
		cfg.PendingRetention, cfg.SweepInterval, cfg.lockerKind())

	return cfg, nil
}

func (c *BookingRuntimeConfig) lockerKind() string {
	if c.RedisAddr != "" {
		return "redis"
	}
	return "mutex"
}

func validateConfig(cfg *BookingRuntimeConfig) error {
	if cfg.PendingRetention <= 0 {
		return fmt.Errorf("PENDING_RETENTION must be > 0")
	}
	if cfg.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be > 0")
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be > 0")
	}
	if cfg.LockTTL <= 0 {
		return fmt.Errorf("SLOT_LOCK_TTL must be > 0")
	}
	if cfg.Currency == "" {
		return fmt.Errorf("CURRENCY must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
