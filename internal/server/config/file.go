package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/skillboard/internal/flagx"
	"github.com/dmitrijs2005/skillboard/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the server configuration. Durations use
// timex.Duration so both "1m" and integer nanoseconds are accepted.
type FileConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrHTTP      string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn" yaml:"database_dsn"`
	TokenCodec            string         `json:"token_codec" yaml:"token_codec"`
	SecretKey             string         `json:"secret_key" yaml:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration" yaml:"token_validity_duration"`
	SeedDemoData          bool           `json:"seed_demo_data" yaml:"seed_demo_data"`
	LogMode               string         `json:"log_mode" yaml:"log_mode"`
	S3AccessKey           string         `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey           string         `json:"s3_secret_key" yaml:"s3_secret_key"`
	S3Bucket              string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region              string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3PublicBaseURL       string         `json:"s3_public_base_url" yaml:"s3_public_base_url"`
}

func fromConfig(c *Config) *FileConfig {
	return &FileConfig{
		EndpointAddrGRPC:      c.EndpointAddrGRPC,
		EndpointAddrHTTP:      c.EndpointAddrHTTP,
		DatabaseDSN:           c.DatabaseDSN,
		TokenCodec:            c.TokenCodec,
		SecretKey:             c.SecretKey,
		TokenValidityDuration: timex.Duration{Duration: c.TokenValidityDuration},
		SeedDemoData:          c.SeedDemoData,
		LogMode:               c.LogMode,
		S3AccessKey:           c.S3AccessKey,
		S3SecretKey:           c.S3SecretKey,
		S3Bucket:              c.S3Bucket,
		S3Region:              c.S3Region,
		S3BaseEndpoint:        c.S3BaseEndpoint,
		S3PublicBaseURL:       c.S3PublicBaseURL,
	}
}

func (f *FileConfig) apply(c *Config) {
	c.EndpointAddrGRPC = f.EndpointAddrGRPC
	c.EndpointAddrHTTP = f.EndpointAddrHTTP
	c.DatabaseDSN = f.DatabaseDSN
	c.TokenCodec = f.TokenCodec
	c.SecretKey = f.SecretKey
	c.TokenValidityDuration = f.TokenValidityDuration.Duration
	c.SeedDemoData = f.SeedDemoData
	c.LogMode = f.LogMode
	c.S3AccessKey = f.S3AccessKey
	c.S3SecretKey = f.S3SecretKey
	c.S3Bucket = f.S3Bucket
	c.S3Region = f.S3Region
	c.S3BaseEndpoint = f.S3BaseEndpoint
	c.S3PublicBaseURL = f.S3PublicBaseURL
}

// configFilePath returns the value of -c / -config in args, or "".
func configFilePath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(flagx.FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}

// parseFile overlays the file at path onto config. Keys missing from the
// file keep their current values. The format follows the extension: .yaml
// and .yml are YAML, anything else is JSON.
func parseFile(config *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	fc := fromConfig(config)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(config)
	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
