package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/lawnbook/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used only for decoding config files. Empty fields
// leave the current value in place.
type FileConfig struct {
	StoreDriver string `json:"store_driver" yaml:"store_driver"`
	StorePath   string `json:"store_path" yaml:"store_path"`
	LogLevel    string `json:"log_level" yaml:"log_level"`
	LogFormat   string `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c / -config. Nothing
// happens when no file is given. Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	overlay(&cfg.StoreDriver, fc.StoreDriver)
	overlay(&cfg.StorePath, fc.StorePath)
	overlay(&cfg.LogLevel, fc.LogLevel)
	overlay(&cfg.LogFormat, fc.LogFormat)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
