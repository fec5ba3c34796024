package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, StorageFile, cfg.StorageBackend)
		assert.Equal(t, "user_data.json", cfg.DataFile)
		assert.Equal(t, 5*time.Second, cfg.SpinMinInterval)
		assert.Equal(t, time.Second, cfg.SaveDebounce)
		assert.Equal(t, int64(10000), cfg.JackpotFloor)
		assert.InDelta(t, 0.10, cfg.JackpotIncrement, 1e-9)
		assert.Equal(t, int64(1000), cfg.InitialBalance)
		assert.Equal(t, int64(10), cfg.DefaultBet)
		assert.Equal(t, int64(50), cfg.BonusMin)
		assert.Equal(t, int64(200), cfg.BonusMax)
		assert.Equal(t, 24*time.Hour, cfg.BonusInterval)
		assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
		assert.False(t, cfg.DevMode)
		assert.Empty(t, cfg.PaytablePath)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("STORAGE_BACKEND", "Redis")
		t.Setenv("REDIS_ADDR", "cache:6380")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("REDIS_KEY", "bot:accounts")
		t.Setenv("SPIN_MIN_INTERVAL", "3s")
		t.Setenv("SAVE_DEBOUNCE", "250ms")
		t.Setenv("JACKPOT_FLOOR", "5000")
		t.Setenv("JACKPOT_INCREMENT", "0.05")
		t.Setenv("BONUS_INTERVAL", "3600")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
		t.Setenv("PAYTABLE_PATH", "configs/paytable.yaml")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, StorageRedis, cfg.StorageBackend)
		assert.Equal(t, "cache:6380", cfg.RedisAddr)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, "bot:accounts", cfg.RedisKey)
		assert.Equal(t, 3*time.Second, cfg.SpinMinInterval)
		assert.Equal(t, 250*time.Millisecond, cfg.SaveDebounce)
		assert.Equal(t, int64(5000), cfg.JackpotFloor)
		assert.InDelta(t, 0.05, cfg.JackpotIncrement, 1e-9)
		assert.Equal(t, time.Hour, cfg.BonusInterval, "bare numbers are seconds")
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
		assert.Equal(t, "configs/paytable.yaml", cfg.PaytablePath)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), ErrMsgInvalidPort)
	})

	t.Run("invalid numbers fall back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("JACKPOT_FLOOR", "lots")
		t.Setenv("SPIN_MIN_INTERVAL", "soon")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, int64(DefaultJackpotFloor), cfg.JackpotFloor)
		assert.Equal(t, DefaultSpinInterval, cfg.SpinMinInterval)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:             8080,
			APIKey:           "key",
			StorageBackend:   StorageFile,
			ShutdownTimeout:  time.Second,
			SpinMinInterval:  5 * time.Second,
			SaveDebounce:     time.Second,
			BonusInterval:    24 * time.Hour,
			JackpotFloor:     10000,
			JackpotIncrement: 0.1,
			InitialBalance:   1000,
			DefaultBet:       10,
			BonusMin:         50,
			BonusMax:         200,
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing api key", func(c *Config) { c.APIKey = "" }, "API_KEY"},
		{"port out of range", func(c *Config) { c.Port = 70000 }, ErrMsgPortOutOfRange},
		{"unknown backend", func(c *Config) { c.StorageBackend = "s3" }, ErrMsgUnknownBackend},
		{"zero spin interval", func(c *Config) { c.SpinMinInterval = 0 }, "SPIN_MIN_INTERVAL"},
		{"negative debounce", func(c *Config) { c.SaveDebounce = -time.Second }, "SAVE_DEBOUNCE"},
		{"zero bonus interval", func(c *Config) { c.BonusInterval = 0 }, "BONUS_INTERVAL"},
		{"negative floor", func(c *Config) { c.JackpotFloor = -1 }, ErrMsgNegativeJackpotFloor},
		{"increment above one", func(c *Config) { c.JackpotIncrement = 1.5 }, ErrMsgIncrementOutOfRange},
		{"negative increment", func(c *Config) { c.JackpotIncrement = -0.1 }, ErrMsgIncrementOutOfRange},
		{"bonus min above max", func(c *Config) { c.BonusMin = 300 }, ErrMsgBonusRange},
		{"zero default bet", func(c *Config) { c.DefaultBet = 0 }, "DEFAULT_BET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		cfg := valid()
		cfg.APIKey = ""
		cfg.BonusMin = 500
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), ErrMsgBonusRange)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{DBUser: "slots", DBPassword: "p@ss", DBHost: "db", DBPort: "5433", DBName: "slotsbot"}
	assert.Equal(t, "postgres://slots:p@ss@db:5433/slotsbot?sslmode=disable", cfg.GetDBConnString())
}

func TestWarnings(t *testing.T) {
	cfg := &Config{APIKey: "real", StorageBackend: StorageFile, Environment: "dev", CORSOrigins: []string{"*"}, DevMode: true}
	assert.Empty(t, cfg.Warnings(), "development settings are fine outside production")

	cfg = &Config{
		APIKey:         ExampleAPIKey,
		StorageBackend: StoragePostgres,
		DBPassword:     ExampleDBPassword,
		Environment:    "production",
		DevMode:        true,
		CORSOrigins:    []string{"*"},
	}
	warnings := cfg.Warnings()
	assert.Len(t, warnings, 4)
}

func TestEnvHelpers(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
		t.Setenv("TEST_INT_VAR", "42.5")
		assert.Equal(t, 10, getEnvAsInt("TEST_INT_VAR", 10), "Should return default for float values")
		t.Setenv("TEST_INT_VAR", "")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1m30s")
		assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		t.Setenv("TEST_DURATION_VAR", "45")
		assert.Equal(t, 45*time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		t.Setenv("TEST_DURATION_VAR", "later")
		assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
	})

	t.Run("bool", func(t *testing.T) {
		t.Setenv("TEST_BOOL_VAR", "true")
		assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false))
		t.Setenv("TEST_BOOL_VAR", "maybe")
		assert.False(t, getEnvAsBool("TEST_BOOL_VAR", false))
	})

	t.Run("slice", func(t *testing.T) {
		t.Setenv("TEST_SLICE_VAR", " a , ,b")
		assert.Equal(t, []string{"a", "b"}, getEnvAsSlice("TEST_SLICE_VAR", ""))
		t.Setenv("TEST_SLICE_VAR", "")
		assert.Nil(t, getEnvAsSlice("TEST_SLICE_VAR", ""))
	})
}

// clearEnvVars unsets every variable Load reads; t.Setenv restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"DEV_MODE", "SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS",
		"STORAGE_BACKEND", "DATA_FILE",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_KEY",
		"PAYTABLE_PATH", "SPIN_MIN_INTERVAL", "SAVE_DEBOUNCE",
		"JACKPOT_FLOOR", "JACKPOT_INCREMENT", "INITIAL_BALANCE", "DEFAULT_BET",
		"BONUS_MIN", "BONUS_MAX", "BONUS_INTERVAL",
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
