package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures the BFF process configuration.
type Server struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`

	JWTSigningKey string        `yaml:"jwt_signing_key"`
	TokenTTL      time.Duration `yaml:"token_ttl"`

	Admin   Admin         `yaml:"admin"`
	Lockout LockoutConfig `yaml:"lockout"`
	Backend Backend       `yaml:"backend"`
	Redis   RedisConfig   `yaml:"redis"`
	Audit   AuditConfig   `yaml:"audit"`
	Console ConsoleConfig `yaml:"console"`
}

// Admin holds the single console operator account.
type Admin struct {
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"`
}

// LockoutConfig throttles failed logins per email and client IP.
type LockoutConfig struct {
	Attempts int           `yaml:"attempts"`
	Window   time.Duration `yaml:"window"`
	Duration time.Duration `yaml:"duration"`
}

// Backend configures the remote REST API the console wraps.
type Backend struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`

	// BreakerThreshold consecutive unavailable answers open the circuit for BreakerCooldown.
	BreakerThreshold int           `yaml:"breaker_threshold"`
	BreakerCooldown  time.Duration `yaml:"breaker_cooldown"`
}

// RedisConfig configures the optional token revocation backend.
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// AuditConfig selects the audit store; empty DatabaseURL keeps events in memory.
type AuditConfig struct {
	DatabaseURL string `yaml:"database_url"`
	AsyncBuffer int    `yaml:"async_buffer"`
}

// ConsoleConfig tunes the per-session stores.
type ConsoleConfig struct {
	SessionIdleTTL       time.Duration `yaml:"session_idle_ttl"`
	TransactionsPageSize int           `yaml:"transactions_page_size"`
	SearchPageSize       int           `yaml:"search_page_size"`
	UnassignedPageSize   int           `yaml:"unassigned_page_size"`
}

// Defaults returns the development configuration.
func Defaults() Server {
	return Server{
		Addr:          ":8080",
		LogLevel:      "info",
		JWTSigningKey: "dev-secret-key-change-in-production",
		TokenTTL:      8 * time.Hour,
		Lockout: LockoutConfig{
			Attempts: 5,
			Window:   15 * time.Minute,
			Duration: 15 * time.Minute,
		},
		Backend: Backend{
			BaseURL:          "http://localhost:3000/api/",
			Timeout:          15 * time.Second,
			BreakerThreshold: 5,
			BreakerCooldown:  30 * time.Second,
		},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Audit: AuditConfig{AsyncBuffer: 256},
		Console: ConsoleConfig{
			SessionIdleTTL:       30 * time.Minute,
			TransactionsPageSize: 10,
			SearchPageSize:       10,
			UnassignedPageSize:   10,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// BACKOFFICE_CONFIG, then environment variables.
func Load() (Server, error) {
	cfg := Defaults()
	if path := os.Getenv("BACKOFFICE_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Server{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// FromEnv builds a Server config from environment variables only so tests and
// tools can skip the file layer. Invalid values fall back to defaults.
func FromEnv() Server {
	cfg := Defaults()
	_ = cfg.applyEnv()
	return cfg
}

func (c *Server) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Server) applyEnv() error {
	setString(&c.Addr, "BACKOFFICE_ADDR")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.JWTSigningKey, "JWT_SIGNING_KEY")
	setString(&c.Admin.Email, "ADMIN_EMAIL")
	setString(&c.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&c.Backend.BaseURL, "BACKEND_BASE_URL")
	setString(&c.Backend.Token, "BACKEND_TOKEN")
	setString(&c.Redis.URL, "REDIS_URL")
	setString(&c.Audit.DatabaseURL, "AUDIT_DATABASE_URL")

	for _, d := range []struct {
		dst *time.Duration
		key string
	}{
		{&c.TokenTTL, "TOKEN_TTL"},
		{&c.Backend.Timeout, "BACKEND_TIMEOUT"},
		{&c.Backend.BreakerCooldown, "BACKEND_BREAKER_COOLDOWN"},
		{&c.Lockout.Window, "LOGIN_LOCKOUT_WINDOW"},
		{&c.Lockout.Duration, "LOGIN_LOCKOUT_DURATION"},
		{&c.Console.SessionIdleTTL, "CONSOLE_SESSION_IDLE_TTL"},
	} {
		if err := setDuration(d.dst, d.key); err != nil {
			return err
		}
	}

	for _, n := range []struct {
		dst *int
		key string
	}{
		{&c.Console.TransactionsPageSize, "TRANSACTIONS_PAGE_SIZE"},
		{&c.Console.SearchPageSize, "SEARCH_PAGE_SIZE"},
		{&c.Console.UnassignedPageSize, "UNASSIGNED_PAGE_SIZE"},
		{&c.Audit.AsyncBuffer, "AUDIT_ASYNC_BUFFER"},
		{&c.Backend.BreakerThreshold, "BACKEND_BREAKER_THRESHOLD"},
		{&c.Lockout.Attempts, "LOGIN_LOCKOUT_ATTEMPTS"},
	} {
		if err := setInt(n.dst, n.key); err != nil {
			return err
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid %s: %q", key, v)
	}
	*dst = n
	return nil
}
