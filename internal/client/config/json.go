package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mailtriage/internal/flagx"
	"github.com/dmitrijs2005/mailtriage/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from an empty value.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	GraphQLPath    *string         `json:"graphql_path"`
	TaskPrefix     *string         `json:"task_prefix"`
	DatabaseDSN    *string         `json:"database_dsn"`
	LogLevel       *string         `json:"log_level"`
	MetricsAddr    *string         `json:"metrics_addr"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values from the file named by -c or
// -config. It does nothing when neither flag is given and panics when the
// file cannot be read or decoded.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.ServerURL, jc.ServerURL)
	overlay(&cfg.GraphQLPath, jc.GraphQLPath)
	overlay(&cfg.TaskPrefix, jc.TaskPrefix)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.MetricsAddr, jc.MetricsAddr)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func overlay(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
