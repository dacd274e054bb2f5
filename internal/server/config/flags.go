package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/flagx"
)

var serverFlags = []string{
	"-a", "-l", "-d", "-k", "-s", "-t", "-seed", "-log",
	"-u", "-p", "-b", "-g", "-e", "-public",
}

// parseFlags overlays command-line flags onto config.
//
// Supported flags:
//
//	-a string    gRPC bind address (e.g., ":50051")
//	-l string    HTTP bind address (e.g., ":8080")
//	-d string    PostgreSQL DSN; empty keeps the in-memory store
//	-k string    token codec: plain | jwt
//	-s string    JWT HMAC secret key
//	-t int       token validity, minutes (0 = no expiry)
//	-seed bool   seed demo accounts and profiles
//	-log string  log mode: json | text | zap-dev | zap-prod
//	-u string    S3 access key
//	-p string    S3 secret key
//	-b string    S3 bucket name
//	-g string    S3 region
//	-e string    S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-public string  public base URL for uploaded objects
//
// Arguments that are not listed above (like -c) are filtered out first with
// flagx.FilterArgs so they do not collide with this flag set.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, serverFlags)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.TokenCodec, "k", config.TokenCodec, "token codec (plain|jwt)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	validity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")

	fs.BoolVar(&config.SeedDemoData, "seed", config.SeedDemoData, "seed demo data")
	fs.StringVar(&config.LogMode, "log", config.LogMode, "log mode")

	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3PublicBaseURL, "public", config.S3PublicBaseURL, "public base URL for uploaded objects")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*validity) * time.Minute
		}
	})
	return nil
}
