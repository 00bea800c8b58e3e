// Package config loads runtime configuration for the LoginKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     ".yaml"/".yml" files are YAML, anything else JSON.
//  3. Environment variables LOGINKEEPER_* (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend API base URL
//	-i int      online status check interval (seconds)
//	-s string   store kind (sqlite, file, redis, memory)
//	-p string   store path
//	-r string   redis address
//	-l string   log level
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8101/api",
//	  "online_check_interval": "3s",
//	  "store": "sqlite",
//	  "store_path": "loginkeeper.db"
//	}
//
// Keys missing from the file keep their previous value.
package config
