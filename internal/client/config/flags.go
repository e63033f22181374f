package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/mailtriage/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed here are considered, so -c/-config and unknown flags are ignored.
func parseFlags(cfg *Config) {
	args := flagx.Only(os.Args[1:], "-a", "-g", "-t", "-d", "-l", "-m", "-r")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	fs.StringVar(&cfg.GraphQLPath, "g", cfg.GraphQLPath, "query/mutation endpoint path")
	fs.StringVar(&cfg.TaskPrefix, "t", cfg.TaskPrefix, "task endpoint path prefix")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite file for the persisted session")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address, empty to disable")
	timeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 disables)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
