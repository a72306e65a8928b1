package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the CLI flags in args.
//
// Flags:
//
//	-payload/-c       integration JSON file path
//	-request-timeout  exchange request timeout (e.g., "30s")
//	-token-duration   assertion validity window (e.g., "24h")
//	-log-level        zerolog level name
//	-version          print build info and exit
func parseFlags(args []string) (*StructuredConfig, error) {
	var payloadPath string
	var requestTimeout time.Duration
	var tokenDuration time.Duration
	var logLevel string
	var showVersion bool

	fs := flag.NewFlagSet("ims-exchange", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&payloadPath, "payload", "", "Integration JSON payload file path")
	fs.StringVar(&payloadPath, "c", "", "Integration JSON payload file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Assertion validity window (e.g., 24h)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Print build info and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		PayloadPath: payloadPath,
		ShowVersion: showVersion,
	}, nil
}
