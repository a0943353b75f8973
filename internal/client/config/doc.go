// Package config loads runtime configuration for the VideoGenius CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. VG_* environment variables, falling back to a .env file in the
//     working directory (see parseEnv).
//  3. Optional config file selected via -c or -config; .yaml/.yml files are
//     YAML, anything else JSON (see parseFile).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   server URL
//	-d string   session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5005",
//	  "db_path": "videogenius.db",
//	  "request_timeout": "30s",
//	  "text_encoding": "form",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
