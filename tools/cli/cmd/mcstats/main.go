// Command mcstats prints server and player statistics from the terminal,
// reading the same configuration as the API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/app"
	"github.com/krazyminecraft/stats-api/internal/config"
	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/worker"
)

func main() {
	if err := newApp(buildService).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mcstats:", err)
		os.Exit(1)
	}
}

// buildService wires the stats service from the environment and flags.
func buildService(c *cli.Context) (logic.StatsService, func(), error) {
	cfg, err := loadConfig(c.String("stats-dir"), c.String("usercache"))
	if err != nil {
		return nil, nil, err
	}

	logger := zap.NewNop()
	if c.Bool("verbose") {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, nil, err
		}
	}

	a, err := app.Build(context.Background(), cfg, worker.GroupCollector{Limit: c.Int("workers")}, logger)
	if err != nil {
		return nil, nil, err
	}
	return a.Stats, func() {
		a.Close()
		_ = logger.Sync()
	}, nil
}

// loadConfig applies the local file flags before validating, so they can
// stand in for backends the environment leaves incomplete.
func loadConfig(statsDir, usercache string) (*config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}
	if statsDir != "" {
		cfg.StatsSource = config.SourceFile
		cfg.StatsDir = statsDir
	}
	if usercache != "" {
		cfg.DirectorySource = config.SourceFile
		cfg.DirectoryPath = usercache
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
