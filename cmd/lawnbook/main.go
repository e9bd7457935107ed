package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/lawnbook/internal/buildinfo"
	"github.com/dmitrijs2005/lawnbook/internal/cli"
	"github.com/dmitrijs2005/lawnbook/internal/config"
	"github.com/dmitrijs2005/lawnbook/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := loadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

	if err := app.Close(); err != nil {
		logger.Error(ctx, "error closing store", "error", err)
	}
}

func loadConfig() (cfg *config.Config) {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("invalid configuration: %v", r)
		}
	}()
	return config.LoadConfig()
}
