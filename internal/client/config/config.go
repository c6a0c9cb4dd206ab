// Package config assembles the Triply client configuration: defaults, then
// an optional JSON file (-c/-config), then command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Triply CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: SQLite file holding offline credentials and cached trips.
//   - RequestTimeout: upper bound for a single RPC.
//   - ExportDir: directory exported itineraries are written to.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	RequestTimeout      time.Duration
	ExportDir           string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "triply.db"
	c.RequestTimeout = 10 * time.Second
	c.ExportDir = "exports"
	c.LogLevel = "warn"
}

// Load constructs a Config from args (without the program name). Later
// sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads the configuration of the running process.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
