package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/johnwards/propcat/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes one command line against the configured database. A failure
// is reported on stderr, through the configured logger once it exists.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{cfg: config.Load()}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		if a.logger != nil {
			a.logger.Error("command failed", "error", err)
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "propcat",
		Short: "Browse, search and analyse a property listing catalog",
		Long: `propcat loads a catalog of listings, locations, developers and agents
from SQLite and answers search, retrieval and market analysis queries.

An empty database is seeded with a demo catalog unless --seed=false.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.DBPath, "db", a.cfg.DBPath, "SQLite database path (PROPCAT_DB)")
	flags.StringVar(&a.cfg.CatalogPath, "catalog", a.cfg.CatalogPath, "catalog file imported before the command runs (PROPCAT_CATALOG)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error (PROPCAT_LOG_LEVEL)")
	flags.BoolVar(&a.cfg.Seed, "seed", a.cfg.Seed, "seed the demo catalog into an empty database (PROPCAT_SEED)")
	flags.BoolVar(&a.jsonOut, "json", false, "write JSON instead of text")

	root.AddCommand(
		newSearchCmd(a),
		newShowCmd(a),
		newFeaturedCmd(a),
		newBrowseCmd(a),
		newAnalysisCmd(a),
		newStatsCmd(a),
		newTrendCmd(a),
		newImportCmd(a),
	)
	return root
}
