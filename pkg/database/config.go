package database

import (
	"time"

	"github.com/heal-clinic/heal_backend/config"
)

// Config holds MongoDB connection and behavior settings
type Config struct {
	URI      string
	Database string

	ConnectTimeoutSeconds int
	SocketTimeoutSeconds  int
	MaxPoolSize           uint64
}

// DefaultConfig returns sensible defaults for MongoDB configuration
func DefaultConfig() Config {
	return Config{
		URI:                   "mongodb://localhost:27017",
		Database:              "heal",
		ConnectTimeoutSeconds: 10,
		SocketTimeoutSeconds:  30,
		MaxPoolSize:           50,
	}
}

// ConnectTimeout returns the connect timeout as a duration
func (c Config) ConnectTimeout() time.Duration {
	if c.ConnectTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// SocketTimeout returns the socket timeout as a duration
func (c Config) SocketTimeout() time.Duration {
	if c.SocketTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SocketTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.MongoConfig to package Config
func FromCentralConfig(c config.MongoConfig) Config {
	cfg := DefaultConfig()

	if c.URI != "" {
		cfg.URI = c.URI
	}
	if c.Database != "" {
		cfg.Database = c.Database
	}
	if c.ConnectTimeoutSeconds > 0 {
		cfg.ConnectTimeoutSeconds = c.ConnectTimeoutSeconds
	}
	if c.SocketTimeoutSeconds > 0 {
		cfg.SocketTimeoutSeconds = c.SocketTimeoutSeconds
	}
	if c.MaxPoolSize > 0 {
		cfg.MaxPoolSize = c.MaxPoolSize
	}

	return cfg
}
