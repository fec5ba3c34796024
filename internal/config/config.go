package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int
	LogLevel        string
	LogFormat       string
	Environment     string
	ServiceName     string
	Version         string
	APIKey          string // API key for admin routes
	DevMode         bool
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	// Storage
	StorageBackend    string
	DataFile          string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RedisKey          string

	// Game rules
	PaytablePath     string
	SpinMinInterval  time.Duration
	SaveDebounce     time.Duration
	JackpotFloor     int64
	JackpotIncrement float64
	InitialBalance   int64
	DefaultBet       int64
	BonusMin         int64
	BonusMax         int64
	BonusInterval    time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment:     getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:     getEnv("SERVICE_NAME", DefaultServiceName),
		Version:         getEnv("VERSION", DefaultVersion),
		APIKey:          getEnv("API_KEY", ""),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		CORSOrigins:     getEnvAsSlice("CORS_ALLOWED_ORIGINS", DefaultCORSOrigins),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend)),
		DataFile:          getEnv("DATA_FILE", DefaultDataFile),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "slotsbot"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxLifetime),
		RedisAddr:         getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		RedisKey:          getEnv("REDIS_KEY", DefaultRedisKey),

		PaytablePath:     getEnv("PAYTABLE_PATH", ""),
		SpinMinInterval:  getEnvAsDuration("SPIN_MIN_INTERVAL", DefaultSpinInterval),
		SaveDebounce:     getEnvAsDuration("SAVE_DEBOUNCE", DefaultSaveDebounce),
		JackpotFloor:     getEnvAsInt64("JACKPOT_FLOOR", DefaultJackpotFloor),
		JackpotIncrement: getEnvAsFloat("JACKPOT_INCREMENT", DefaultJackpotIncrease),
		InitialBalance:   getEnvAsInt64("INITIAL_BALANCE", DefaultInitialBalance),
		DefaultBet:       getEnvAsInt64("DEFAULT_BET", DefaultBet),
		BonusMin:         getEnvAsInt64("BONUS_MIN", DefaultBonusMin),
		BonusMax:         getEnvAsInt64("BONUS_MAX", DefaultBonusMax),
		BonusInterval:    getEnvAsDuration("BONUS_INTERVAL", DefaultBonusInterval),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New(ErrMsgAPIKeyRequired))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s: got %d", ErrMsgPortOutOfRange, c.Port))
	}
	switch c.StorageBackend {
	case StorageFile, StoragePostgres, StorageRedis:
	default:
		errs = append(errs, fmt.Errorf("%s %q (want %s, %s or %s)",
			ErrMsgUnknownBackend, c.StorageBackend, StorageFile, StoragePostgres, StorageRedis))
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"SPIN_MIN_INTERVAL", c.SpinMinInterval},
		{"SAVE_DEBOUNCE", c.SaveDebounce},
		{"BONUS_INTERVAL", c.BonusInterval},
		{"SHUTDOWN_TIMEOUT", c.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%s %s: got %s", d.name, ErrMsgNonPositiveInterval, d.value))
		}
	}

	if c.JackpotFloor < 0 {
		errs = append(errs, errors.New(ErrMsgNegativeJackpotFloor))
	}
	if c.JackpotIncrement < 0 || c.JackpotIncrement > 1 {
		errs = append(errs, fmt.Errorf("%s: got %g", ErrMsgIncrementOutOfRange, c.JackpotIncrement))
	}
	if c.BonusMin < 0 {
		errs = append(errs, errors.New(ErrMsgNegativeBonus))
	}
	if c.BonusMin > c.BonusMax {
		errs = append(errs, fmt.Errorf("%s: %d > %d", ErrMsgBonusRange, c.BonusMin, c.BonusMax))
	}
	if c.InitialBalance < 0 {
		errs = append(errs, fmt.Errorf("INITIAL_BALANCE must not be negative: got %d", c.InitialBalance))
	}
	if c.DefaultBet <= 0 {
		errs = append(errs, fmt.Errorf("DEFAULT_BET %s: got %d", ErrMsgNonPositiveAmount, c.DefaultBet))
	}

	return errors.Join(errs...)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if v, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsDuration accepts Go duration strings ("90s") or bare seconds ("90")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvAsSlice splits a comma separated list, dropping empty entries
func getEnvAsSlice(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsProduction reports whether the service runs in a production environment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production") || strings.EqualFold(c.Environment, "prod")
}
