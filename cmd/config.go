package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"repairshop/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel  string
	LogPretty bool

	// RedisAddr empty disables the resolution cache.
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	ResolutionCacheTTL time.Duration

	DocumentsDir          string
	DocumentRetrySchedule string
	StatusFile            string
	Timezone              string

	WorkerQueueSize   int
	WorkerTaskTimeout time.Duration
}

// LoadConfig reads the environment, after loading envFile when it exists.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:              env("HTTP_PORT", "8080"),
		DBHost:                env("DB_HOST", "localhost"),
		DBPort:                env("DB_PORT", "5432"),
		DBUser:                env("DB_USER", "postgres"),
		DBPassword:            env("DB_PASSWORD", ""),
		DBName:                env("DB_NAME", "repairshop"),
		DBSslMode:             env("DB_SSLMODE", "disable"),
		LogLevel:              env("LOG_LEVEL", "info"),
		RedisAddr:             env("REDIS_ADDR", ""),
		RedisPassword:         env("REDIS_PASSWORD", ""),
		DocumentsDir:          env("DOCUMENTS_DIR", "ordenes"),
		DocumentRetrySchedule: env("DOCUMENT_RETRY_SCHEDULE", ""),
		StatusFile:            env("STATUS_FILE", ""),
		Timezone:              env("TIMEZONE", ""),
	}

	var err error
	if cfg.LogPretty, err = envBool("LOG_PRETTY", false); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.ResolutionCacheTTL, err = envDuration("RESOLUTION_CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.WorkerQueueSize, err = envInt("WORKER_QUEUE_SIZE", 256); err != nil {
		return Config{}, err
	}
	if cfg.WorkerTaskTimeout, err = envDuration("WORKER_TASK_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location returns the zone order stamps are taken in.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}
	return loc, nil
}

type statusFile struct {
	Workshops []string `yaml:"workshops"`
}

// LoadStatusCatalog reads the workshop labels from a YAML file such as
//
//	workshops:
//	  - EN SOS
//	  - EN WERTECH
//
// An empty path selects the default workshops.
func LoadStatusCatalog(path string) (*order.StatusCatalog, error) {
	if path == "" {
		return order.DefaultStatusCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read status file: %w", err)
	}

	var file statusFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse status file %s: %w", path, err)
	}

	statuses, err := order.NewStatusCatalog(file.Workshops)
	if err != nil {
		return nil, fmt.Errorf("status file %s: %w", path, err)
	}
	return statuses, nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := env(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	raw := env(key, "")
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := env(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
