package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDriver         string
	DatabaseDSN            string
	AutoMigrate            bool
	RateLimit              int
	RateLimitBackend       string
	RedisAddr              string
	RedisKeyPrefix         string
	ShutdownTimeoutSeconds int
	LogLevel               string
	BcryptCost             int
}

func Load() (Config, error) {
	var errs []error

	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	dsn := databaseDSN()
	driver := strings.ToLower(getEnv("DATABASE_DRIVER", driverFromDSN(dsn)))

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDriver:         driver,
		DatabaseDSN:            dsn,
		AutoMigrate:            getEnvAsBool("AUTO_MIGRATE", true, &errs),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60, &errs),
		RateLimitBackend:       strings.ToLower(getEnv("RATE_LIMIT_BACKEND", RateLimitMemory)),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "todo_api:ratelimit:"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20, &errs),
		LogLevel:               strings.ToLower(getEnv("LOG_LEVEL", "info")),
		BcryptCost:             getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost, &errs),
	}

	errs = append(errs, validate(cfg)...)
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

// databaseDSN prefers an explicit DSN and otherwise builds a Postgres one
// from the POSTGRES_* variables, falling back to a local SQLite file.
func databaseDSN() string {
	if dsn := getEnv("DATABASE_DSN", ""); dsn != "" {
		return dsn
	}
	if dsn := getEnv("DATABASE_URL", ""); dsn != "" {
		return dsn
	}

	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	name := os.Getenv("POSTGRES_DB")
	if user != "" && password != "" && name != "" {
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(user, password),
			Host:     fmt.Sprintf("%s:%s", getEnv("POSTGRES_HOST", "db"), getEnv("POSTGRES_PORT", "5432")),
			Path:     "/" + name,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	}

	return "tasks.db"
}

func driverFromDSN(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres
	case strings.Contains(dsn, "host=") && strings.Contains(dsn, "dbname="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}

func validate(cfg Config) []error {
	var errs []error
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres))
	}
	if cfg.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
	}
	if cfg.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0"))
	}
	if cfg.RateLimitBackend != RateLimitMemory && cfg.RateLimitBackend != RateLimitRedis {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BACKEND must be %q or %q", RateLimitMemory, RateLimitRedis))
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	return errs
}

func getEnv(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int, errs *[]error) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid integer value for %s", key))
			return defaultVal
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool, errs *[]error) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid boolean value for %s", key))
			return defaultVal
		}
		return b
	}
	return defaultVal
}
