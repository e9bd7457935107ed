// Package config loads runtime configuration for the LawnBook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. An optional .env file in the working directory, then environment
//     variables prefixed with LAWNBOOK_.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   store driver: sqlite, bolt or memory
//	-s string   store path (database file)
//	-l string   log level: debug, info, warn or error
//	-f string   log format: text or json
//
// Environment
//
//	LAWNBOOK_STORE_DRIVER, LAWNBOOK_STORE_PATH,
//	LAWNBOOK_LOG_LEVEL, LAWNBOOK_LOG_FORMAT
//
// # File schema
//
//	{
//	  "store_driver": "sqlite",
//	  "store_path": "lawnbook.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
