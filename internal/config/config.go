package config

import (
	"os"

	"github.com/dmitrijs2005/lawnbook/internal/store"
)

// Config holds runtime settings for the LawnBook CLI.
type Config struct {
	StoreDriver string `env:"STORE_DRIVER"`
	StorePath   string `env:"STORE_PATH"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = store.DriverSQLite
	c.StorePath = "lawnbook.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, the config file, the
// environment and the command line, in that order. It panics on unreadable
// files or invalid flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := os.Args[1:]
	parseFile(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
