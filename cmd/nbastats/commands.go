package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/resolver"
	"github.com/preston-bernstein/nba-stats-service/internal/stats"
)

func (c *cli) playersCmd() *cobra.Command {
	var active bool
	cmd := &cobra.Command{
		Use:   "players",
		Short: "List the league roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.svc.List(cmd.Context(), active)
			if err != nil {
				return fmt.Errorf("list players: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), players.NewRosterResponse(list))
		},
	}
	cmd.Flags().BoolVar(&active, "active", false, "only players on a current roster")
	return cmd
}

func (c *cli) findCmd() *cobra.Command {
	var inactive bool
	cmd := &cobra.Command{
		Use:   "find <name|id>",
		Short: "Resolve one player by name or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, found, err := c.svc.Find(cmd.Context(), resolver.ParseQuery(args[0]), inactive)
			if err != nil {
				return fmt.Errorf("find player: %w", err)
			}
			if !found {
				return fmt.Errorf("no player matches %q", args[0])
			}
			return printJSON(cmd.OutOrStdout(), player)
		},
	}
	cmd.Flags().BoolVar(&inactive, "inactive", false, "also match retired players")
	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	var (
		basic    string
		advanced string
		params   map[string]string
	)
	cmd := &cobra.Command{
		Use:   "stats <name|id>",
		Short: "Fetch a player's profile and season stats",
		Long: `Fetch a player's profile with basic and advanced season stats.

--basic and --advanced accept true, false, or a comma separated list of
stat codes, for example --basic PTS,AST or --advanced TS,USG.
--param overrides dashboard query defaults, for example
--param Season=2019-20 --param PerMode=Totals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := statsOptions(basic, advanced, params)
			if err != nil {
				return err
			}
			result, found, err := c.svc.Stats(cmd.Context(), resolver.ParseQuery(args[0]), opts)
			if err != nil {
				return fmt.Errorf("fetch stats: %w", err)
			}
			if !found {
				return fmt.Errorf("no player matches %q", args[0])
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&basic, "basic", "", "basic stats: true, false, or codes")
	cmd.Flags().StringVar(&advanced, "advanced", "", "advanced stats: true, false, or codes")
	cmd.Flags().StringToStringVar(&params, "param", nil, "dashboard query override as Key=Value")
	return cmd
}

func statsOptions(basic, advanced string, params map[string]string) (stats.Options, error) {
	defaults := stats.DefaultOptions()
	opts := stats.Options{
		Basic:    domainstats.ParseSelection(basic, defaults.Basic),
		Advanced: domainstats.ParseSelection(advanced, defaults.Advanced),
	}
	for key, value := range params {
		if !providers.IsDashboardParam(key) {
			return stats.Options{}, fmt.Errorf("unknown dashboard parameter %q", key)
		}
		if opts.Params == nil {
			opts.Params = make(map[string]string, len(params))
		}
		opts.Params[key] = value
	}
	return opts, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
