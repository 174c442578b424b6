package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported storage drivers for the persistent store.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName              string
	AppEnv               string
	AppPort              string
	StorageDriver        string
	DatabaseURL          string
	RedisURL             string
	RedisPrefix          string
	NATSURL              string
	NotificationChannel  string
	NotificationTTL      time.Duration
	ConfirmationTTL      time.Duration
	QuranAPIBaseURL      string
	QuranAPITimeout      time.Duration
	ImportMaxBytes       int
	ImportRateLimit      int
	ImportRateLimitEvery time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ALHAFIZH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	v.SetDefault("app.name", "Al-Hafizh API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("storage.driver", StorageSQLite)
	v.SetDefault("database.url", "file:alhafizh.db?cache=shared")
	v.SetDefault("redis.prefix", "alhafizh:")
	v.SetDefault("notifications.channel", "alhafizh:notifications")
	v.SetDefault("notifications.ttl", "5s")
	v.SetDefault("confirmations.ttl", "2m")
	v.SetDefault("quran_api.base_url", "https://equran.id/api/v2")
	v.SetDefault("quran_api.timeout", "10s")
	v.SetDefault("import.max_bytes", 1<<20)
	v.SetDefault("import.rate_limit", 10)
	v.SetDefault("import.rate_window", "1m")

	notificationTTL, err := parseDuration(v, "notifications.ttl", 5*time.Second)
	if err != nil {
		return Config{}, err
	}

	confirmationTTL, err := parseDuration(v, "confirmations.ttl", 2*time.Minute)
	if err != nil {
		return Config{}, err
	}

	apiTimeout, err := parseDuration(v, "quran_api.timeout", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	rateWindow, err := parseDuration(v, "import.rate_window", time.Minute)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppName:              v.GetString("app.name"),
		AppEnv:               v.GetString("app.env"),
		AppPort:              v.GetString("app.port"),
		StorageDriver:        strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
		DatabaseURL:          v.GetString("database.url"),
		RedisURL:             v.GetString("redis.url"),
		RedisPrefix:          v.GetString("redis.prefix"),
		NATSURL:              v.GetString("nats.url"),
		NotificationChannel:  v.GetString("notifications.channel"),
		NotificationTTL:      notificationTTL,
		ConfirmationTTL:      confirmationTTL,
		QuranAPIBaseURL:      strings.TrimRight(v.GetString("quran_api.base_url"), "/"),
		QuranAPITimeout:      apiTimeout,
		ImportMaxBytes:       v.GetInt("import.max_bytes"),
		ImportRateLimit:      v.GetInt("import.rate_limit"),
		ImportRateLimitEvery: rateWindow,
	}

	switch cfg.StorageDriver {
	case StorageSQLite, StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("database url must be provided for %s storage", cfg.StorageDriver)
		}
	case StorageRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("redis url must be provided for redis storage")
		}
	default:
		return Config{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.ImportMaxBytes <= 0 {
		cfg.ImportMaxBytes = 1 << 20
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if parsed <= 0 {
		return fallback, nil
	}

	return parsed, nil
}
