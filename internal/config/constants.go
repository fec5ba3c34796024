package config

import "time"

// Storage backends
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "slots-bot"
	DefaultVersion         = "dev"
	DefaultStorageBackend  = StorageFile
	DefaultDataFile        = "user_data.json"
	DefaultRedisAddr       = "localhost:6379"
	DefaultRedisKey        = "slots:accounts"
	DefaultDBMaxConns      = 10
	DefaultDBMaxIdleTime   = 5 * time.Minute
	DefaultDBMaxLifetime   = time.Hour
	DefaultSpinInterval    = 5 * time.Second
	DefaultSaveDebounce    = time.Second
	DefaultJackpotFloor    = 10000
	DefaultJackpotIncrease = 0.10
	DefaultInitialBalance  = 1000
	DefaultBet             = 10
	DefaultBonusMin        = 50
	DefaultBonusMax        = 200
	DefaultBonusInterval   = 24 * time.Hour
	DefaultShutdownTimeout = 10 * time.Second
	DefaultCORSOrigins     = "*"
)

// Error Messages
const (
	ErrMsgAPIKeyRequired       = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPort          = "invalid PORT value"
	ErrMsgPortOutOfRange       = "PORT must be between 1 and 65535"
	ErrMsgUnknownBackend       = "unknown STORAGE_BACKEND"
	ErrMsgNonPositiveInterval  = "must be a positive duration"
	ErrMsgNegativeJackpotFloor = "JACKPOT_FLOOR must not be negative"
	ErrMsgIncrementOutOfRange  = "JACKPOT_INCREMENT must be between 0 and 1"
	ErrMsgBonusRange           = "BONUS_MIN must not exceed BONUS_MAX"
	ErrMsgNegativeBonus        = "BONUS_MIN must not be negative"
	ErrMsgNonPositiveAmount    = "must be positive"
)
