package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b backend web-app URL
//	-d local database path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-expiry-interval expiry watcher interval (e.g., "1h", "30m")
func ParseFlags() *StructuredConfig {
	var backendURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var expiryInterval time.Duration

	flag.StringVar(&backendURL, "b", "", "Backend web-app URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&expiryInterval, "expiry-interval", 0, "Expiry watcher interval (e.g., 1h, 30m)")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			URL:            backendURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			ExpiryCheckInterval: expiryInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
