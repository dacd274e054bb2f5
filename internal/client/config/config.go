package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/flagx"
)

// Config holds runtime settings for the skillboard CLI.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig builds a Config from defaults, the optional JSON file and
// command-line flags, in that order.
func LoadConfig() (*Config, error) {
	return load(flagx.ConfigFileFlag(), os.Args[1:])
}

func load(file string, args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if file != "" {
		if err := parseJSON(cfg, file); err != nil {
			return nil, err
		}
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}
