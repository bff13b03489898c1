package config

import (
	"time"
)

// AppConfig holds the application configuration
type AppConfig struct {
	ListenAddr       string
	RedisAddress     string
	BearerToken      string
	SimulatedLatency time.Duration
	SeedDemoData     bool
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
