// Package config loads runtime configuration for the mailtriage client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-g string   query/mutation endpoint path
//	-t string   task endpoint path prefix
//	-d string   SQLite file for the persisted session
//	-l string   log level
//	-m string   metrics listen address
//	-r int      request timeout (seconds, 0 disables)
//
// # JSON schema
//
// Keys that are absent keep their earlier value. The timeout uses
// timex.Duration, so it can be a string like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "graphql_path": "/graphql",
//	  "task_prefix": "",
//	  "database_dsn": "mailtriage.db",
//	  "log_level": "debug",
//	  "metrics_addr": "127.0.0.1:9100",
//	  "request_timeout": "30s"
//	}
//
// Environment variables are not read.
package config
