package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	DefaultMaxConnections  = 10
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = time.Hour
)

// MigrationsDir is the directory inside the embedded filesystem holding goose migrations
const MigrationsDir = "migrations"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToLoadMigrations   = "failed to load migrations"
	ErrMsgFailedToApplyMigrations  = "failed to apply migrations"
	ErrMsgFailedToCreateMigrations = "failed to create migration provider"
)

// Log Messages
const (
	LogMsgConnectedToDatabase = "Connected to database"
	LogMsgMigrationApplied    = "Applied migration"
	LogMsgMigrationsUpToDate  = "Database schema is up to date"
)
