package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Sqlite    SqliteConfig
	Sync      SyncConfig
	Bootstrap BootstrapConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPAddr string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SqliteConfig struct {
	Path string
}

type SyncConfig struct {
	// Endpoint is the base URL of the remote authority, e.g. http://host:5000.
	Endpoint string
	Timeout  time.Duration
	// AutoEvery triggers a background sync at this interval; zero disables it.
	AutoEvery time.Duration
	// TerminalID seeds the local id generator; every terminal sharing one
	// authority must use a distinct value.
	TerminalID int64
}

type BootstrapConfig struct {
	AdminPIN string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Sqlite: SqliteConfig{
			Path: getEnv("SQLITE_PATH", "oaks.db"),
		},
		Sync: SyncConfig{
			Endpoint:   getEnv("SYNC_ENDPOINT", "http://localhost:5000"),
			Timeout:    getEnvDuration("SYNC_TIMEOUT", 10*time.Second),
			AutoEvery:  getEnvDuration("SYNC_AUTO_EVERY", 0),
			TerminalID: getEnvInt64("TERMINAL_ID", 1),
		},
		Bootstrap: BootstrapConfig{
			AdminPIN: getEnv("ADMIN_PIN", "1234"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
