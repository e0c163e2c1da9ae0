// Package config provides configuration management for the callboard CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	Database        string `koanf:"database"`
	Port            int    `koanf:"port"`
	RefreshInterval int    `koanf:"refresh_interval"` // seconds between dashboard refreshes
	Watch           bool   `koanf:"watch"`
	SessionSecret   string `koanf:"session_secret"`
	Verbose         bool   `koanf:"verbose"`
	OutputFormat    string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultDatabase        = "callboard.db"
	DefaultPort            = 8090
	DefaultRefreshInterval = 30
	DefaultOutput          = "table"
)
