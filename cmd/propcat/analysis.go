package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnwards/propcat/internal/domain"
)

func newAnalysisCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analysis <id>",
		Short: "Investment analysis of one listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ia, err := a.cat.InvestmentAnalysis(args[0])
			if err != nil {
				return err
			}
			if err := a.saveViews(cmd.Context(), ia.Property); err != nil {
				return err
			}
			return a.writeAnalysis(ia)
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Market statistics for the whole catalog",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.writeStats(a.cat.MarketStatistics())
		},
	}
}

func newTrendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trend <location> <type>",
		Short: "Price trend of a property type in a location",
		Long: `Trend compares the mean price of listings listed in the last 90 days
with older listings of the same location and type.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			t := a.cat.MarketTrend(args[0], domain.PropertyType(args[1]))
			if a.jsonOut {
				return a.writeJSON(map[string]string{
					"location": args[0],
					"type":     args[1],
					"trend":    string(t),
				})
			}
			_, err := fmt.Fprintf(a.out, "%s %s: %s\n", args[0], args[1], t)
			return err
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a YAML or JSON catalog file into the database",
		Long: `Import upserts every record of the file by id. Existing records are
replaced and keep their position in the catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.importFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.writeJSON(res)
			}
			_, err = fmt.Fprintf(a.out, "imported %d properties, %d locations, %d developers, %d agents\n",
				res.Properties, res.Locations, res.Developers, res.Agents)
			return err
		},
	}
}
