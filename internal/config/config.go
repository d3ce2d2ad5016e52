package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	DB      DatabaseConfig
	Redis   RedisConfig
	MinIO   MinIOConfig
	JWT     JWTConfig
	Jobs    JobsConfig
	Pricing PricingDefaultsConfig
}

type ServerConfig struct {
	AppEnv string
	Port   string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
}

// DatabaseConfig holds the Postgres DSN. An empty URL keeps workspace state in memory.
type DatabaseConfig struct {
	URL string
}

// RedisConfig configures the cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MinIOConfig configures snapshot storage. An empty Endpoint disables snapshots.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type JWTConfig struct {
	Secret     string
	JWKSURL    string
	SessionTTL time.Duration
}

type JobsConfig struct {
	SnapshotInterval       time.Duration
	MetricsRefreshInterval time.Duration
}

type PricingDefaultsConfig struct {
	DefaultsFile string
}

// Load reads configuration from the environment, after loading an optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	return &Config{
		Server: ServerConfig{
			AppEnv: appEnv,
			Port:   getEnv("PORT", "8080"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			Development:       appEnv == "development",
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		DB: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			Bucket:    getEnv("MINIO_BUCKET", "trustcart-exports"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", ""),
			JWKSURL:    getEnv("JWT_JWKS_URL", ""),
			SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Jobs: JobsConfig{
			SnapshotInterval:       getEnvDuration("SNAPSHOT_INTERVAL", 6*time.Hour),
			MetricsRefreshInterval: getEnvDuration("METRICS_REFRESH_INTERVAL", 5*time.Minute),
		},
		Pricing: PricingDefaultsConfig{
			DefaultsFile: getEnv("PRICING_DEFAULTS_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
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

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
