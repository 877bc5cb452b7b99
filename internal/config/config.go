package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	defaultRateLimitMax       = 10
	defaultRateLimitWindow    = time.Minute
	defaultDeterrenceWindow   = 10 * time.Minute
	defaultQueueWarnThreshold = 1000
)

type Config struct {
	Addr      string
	DBPath    string
	RedisAddr string
	StaticDir string
	JWTSecret string
	LogLevel  string

	RateLimitMax       int
	RateLimitWindow    time.Duration
	DeterrenceWindow   time.Duration
	QueueWarnThreshold int64
}

func Load() Config {
	addr := os.Getenv("LAUNCHPAD_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dbPath := os.Getenv("LAUNCHPAD_DB_PATH")
	if dbPath == "" {
		dbPath = "./data/launchpad.db"
	}
	redisAddr := os.Getenv("LAUNCHPAD_REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	staticDir := os.Getenv("LAUNCHPAD_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}
	logLevel := os.Getenv("LAUNCHPAD_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Addr:      addr,
		DBPath:    filepath.Clean(dbPath),
		RedisAddr: redisAddr,
		StaticDir: filepath.Clean(staticDir),
		JWTSecret: os.Getenv("LAUNCHPAD_JWT_SECRET"),
		LogLevel:  logLevel,

		RateLimitMax:       intEnv("LAUNCHPAD_RATE_LIMIT_MAX", defaultRateLimitMax),
		RateLimitWindow:    durationMsEnv("LAUNCHPAD_RATE_LIMIT_WINDOW_MS", defaultRateLimitWindow),
		DeterrenceWindow:   durationMsEnv("LAUNCHPAD_DETERRENCE_WINDOW_MS", defaultDeterrenceWindow),
		QueueWarnThreshold: int64Env("LAUNCHPAD_QUEUE_WARN_THRESHOLD", defaultQueueWarnThreshold),
	}
}

func intEnv(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func int64Env(name string, fallback int64) int64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func durationMsEnv(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
