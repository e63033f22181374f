package config

import "time"

// Config holds runtime settings for the mailtriage client.
//
// Fields:
//   - ServerURL: scheme://host:port of the triage backend.
//   - GraphQLPath: path of the query/mutation endpoint, relative to ServerURL.
//   - TaskPrefix: path prefix of the task endpoints (/stats, /upload_emails, /retrain).
//   - DatabaseDSN: SQLite file holding the persisted session.
//   - LogLevel: debug, info, warn or error.
//   - MetricsAddr: host:port for the Prometheus listener; empty disables it.
//   - RequestTimeout: per-call deadline; zero means calls run to completion.
type Config struct {
	ServerURL      string
	GraphQLPath    string
	TaskPrefix     string
	DatabaseDSN    string
	LogLevel       string
	MetricsAddr    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.GraphQLPath = "/graphql"
	c.TaskPrefix = ""
	c.DatabaseDSN = "mailtriage.db"
	c.LogLevel = "info"
	c.MetricsAddr = ""
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
