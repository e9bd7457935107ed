package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/lawnbook/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   store driver
//	-s string   store path
//	-l string   log level
//	-f string   log format
//
// Only these flags are looked at (see flagx.FilterArgs), so -c and any
// other arguments pass through untouched.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-s", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "store driver (sqlite, bolt, memory)")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "store path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
