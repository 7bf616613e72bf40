package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port int

	// Upstream HR API. The console owns no data; every screen is a proxy.
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// Session persistence: memory | redis | postgres
	SessionBackend string
	SessionTTL     time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DBURL string

	// Login attempts per IP per window
	LoginRateLimit  int
	LoginRateWindow time.Duration

	TracingEnabled bool
	OTLPEndpoint   string
}

func Load() Config {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		Port:            getEnvInt("PORT", 8080),
		UpstreamBaseURL: getEnv("HR_API_BASE_URL", "http://127.0.0.1:9090"),
		UpstreamTimeout: time.Duration(getEnvInt("HR_API_TIMEOUT_SECONDS", 8)) * time.Second,
		SessionBackend:  getEnv("SESSION_BACKEND", "memory"),
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour,
		RedisAddr:       getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		DBURL:           buildDBURL(),
		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: time.Duration(getEnvInt("LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
		TracingEnabled:  getEnv("OTEL_ENABLED", "") == "true",
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func buildDBURL() string {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "hrconsole")
	pass := getEnv("DB_PASSWORD", "hrconsole")
	name := getEnv("DB_NAME", "hrconsole")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return num
	}
	return fallback
}
