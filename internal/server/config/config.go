// Package config handles configuration for the server component,
// including defaults, config file overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the skillboard server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses for the two transports.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - TokenCodec: "plain" (base64 JSON, development only) or "jwt".
//   - SecretKey / TokenValidityDuration: HS256 key and lifetime for "jwt"; a
//     zero lifetime issues tokens without expiry.
//   - SeedDemoData: load the two demo accounts and profiles at startup.
//   - LogMode: one of logging.ModeJSON, ModeText, ModeZapDev, ModeZapProd.
//   - S3*: object storage used for avatar uploads. An empty S3Bucket turns
//     avatar uploads off.
type Config struct {
	EndpointAddrGRPC      string
	EndpointAddrHTTP      string
	DatabaseDSN           string
	TokenCodec            string
	SecretKey             string
	TokenValidityDuration time.Duration
	SeedDemoData          bool
	LogMode               string
	S3AccessKey           string
	S3SecretKey           string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	S3PublicBaseURL       string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the default secret key is for local use only.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = ""
	c.TokenCodec = "plain"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.SeedDemoData = true
	c.LogMode = "json"
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, configFilePath(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
