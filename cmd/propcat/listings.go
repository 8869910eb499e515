package main

import (
	"github.com/spf13/cobra"

	"github.com/johnwards/propcat/internal/catalog"
	"github.com/johnwards/propcat/internal/domain"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one listing and count the view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.cat.GetPropertyByID(args[0])
			if err != nil {
				return err
			}
			if err := a.saveViews(cmd.Context(), p); err != nil {
				return err
			}
			return a.writeProperty(p)
		},
	}
}

func newFeaturedCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "List luxury, beachfront and off-plan listings",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.writeListings(a.cat.FeaturedProperties(limit))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", catalog.DefaultFeaturedLimit, "number of listings")
	return cmd
}

func newBrowseCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List listings by location, developer or category",
	}
	cmd.PersistentFlags().IntVar(&limit, "limit", 0, "maximum number of listings, 0 for all")

	byName := func(use, short string, lookup func(string, int) []*domain.Property) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <name>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.writeListings(lookup(args[0], limit))
			},
		}
	}
	category := func(use, short string, lookup func(int) []*domain.Property) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return a.writeListings(lookup(limit))
			},
		}
	}

	// The catalog is only built in PersistentPreRunE, so the lookups go
	// through closures rather than method values.
	cmd.AddCommand(
		byName("location", "Listings in a location", func(name string, n int) []*domain.Property {
			return a.cat.PropertiesByLocation(name, n)
		}),
		byName("developer", "Listings by a developer", func(name string, n int) []*domain.Property {
			return a.cat.PropertiesByDeveloper(name, n)
		}),
		category("new", "Off-plan and under-construction listings", func(n int) []*domain.Property {
			return a.cat.NewProjects(n)
		}),
		category("luxury", "Luxury listings", func(n int) []*domain.Property {
			return a.cat.LuxuryProperties(n)
		}),
		category("beachfront", "Beachfront and waterfront listings", func(n int) []*domain.Property {
			return a.cat.BeachfrontProperties(n)
		}),
	)
	return cmd
}
