package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appplayers "github.com/preston-bernstein/nba-stats-service/internal/app/players"
	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/resolver"
	"github.com/preston-bernstein/nba-stats-service/internal/season"
	"github.com/preston-bernstein/nba-stats-service/internal/server"
	"github.com/preston-bernstein/nba-stats-service/internal/stats"
)

const appVersion = "dev"

// playerService is the slice of the player facade the commands use.
type playerService interface {
	List(ctx context.Context, onlyActive bool) ([]players.Player, error)
	Find(ctx context.Context, q resolver.Query, includeInactive bool) (players.Player, bool, error)
	Stats(ctx context.Context, q resolver.Query, opts stats.Options) (domainstats.Result, bool, error)
}

// newService is swapped in tests.
var newService = func(cfg config.Config, logger *slog.Logger) playerService {
	recorder := metrics.NewRecorder()
	fetcher := server.NewFetcher(cfg, logger, recorder)
	return appplayers.NewService(fetcher, season.NewClock(nil, cfg.Season.Timezone), logger, recorder)
}

type cli struct {
	provider string
	verbose  bool
	svc      playerService
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "nbastats",
		Short: "Look up NBA players and their season stats",
		Long: `A command-line client for stats.nba.com: list the league roster,
resolve a player by name or id, and fetch a player's profile with
basic and advanced season stats. Output is JSON.`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.init()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.provider, "provider", "", "upstream provider (statsnba or fixture); defaults to PROVIDER")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log upstream calls to stderr")

	root.AddCommand(c.playersCmd(), c.findCmd(), c.statsCmd())
	return root
}

func (c *cli) init() {
	_ = godotenv.Load()

	cfg := config.Load()
	if c.provider != "" {
		cfg.Provider = c.provider
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{
		Level:   level,
		Service: "nbastats",
		Version: appVersion,
		Output:  os.Stderr,
	})

	c.svc = newService(cfg, logger)
}
