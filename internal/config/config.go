// Package config parses the CLI surface and ambient environment settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds one invocation's settings: the CLI surface plus ambient
// logging options from the environment.
type Config struct {
	DBPath       string // positional: path to the SQLite report database
	EventID      string // empty selects the first stored event
	Zoom         int
	OutputPrefix string
	OutputDir    string
	ServeAddr    string // empty disables the preview server

	LogLevel  string
	LogFormat string
}

// Load parses flags from args (typically os.Args[1:]) and environment
// variables. A .env file is honored when present.
func Load(args []string) (*Config, error) {
	// Missing .env is the normal case; system env still applies.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("feltmaps", flag.ContinueOnError)
	cfg := &Config{
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),
	}

	fs.StringVar(&cfg.EventID, "event-id", "", "event id to map (default: first row in eventinfo)")
	fs.IntVar(&cfg.Zoom, "zoom", 9, "initial map zoom level")
	fs.StringVar(&cfg.OutputPrefix, "output-prefix", "", "prefix for output file names")
	fs.StringVar(&cfg.OutputDir, "output-dir", ".", "directory for the generated HTML files")
	fs.StringVar(&cfg.ServeAddr, "serve", "", "address to serve generated maps and /metrics on (e.g. :8080); empty disables")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: feltmaps [flags] <db-path>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return nil, errors.New("exactly one positional argument is required: the SQLite database path")
	}
	cfg.DBPath = rest[0]

	if cfg.Zoom < 1 || cfg.Zoom > 19 {
		return nil, fmt.Errorf("zoom %d out of range 1-19", cfg.Zoom)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
