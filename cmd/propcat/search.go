package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnwards/propcat/internal/catalog"
	"github.com/johnwards/propcat/internal/domain"
)

type searchOptions struct {
	propertyType string
	transaction  string
	location     string
	community    string
	developer    string
	status       string
	paymentPlan  string
	completion   string

	minPrice, maxPrice float64
	minArea, maxArea   float64
	bedrooms           int
	bathrooms          int

	furnished  bool
	luxury     bool
	beachfront bool
	waterfront bool
	golfCourse bool

	amenities []string
	features  []string

	sortBy string
	order  string
	limit  int
}

func newSearchCmd(a *app) *cobra.Command {
	var o searchOptions

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search listings by text and filters",
		Long: `Search matches the query case-insensitively against title, location,
community, developer and description, then applies every filter flag given.
Boolean flags only filter when set, so --luxury=false finds non-luxury listings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := catalog.SortOrder(strings.ToLower(o.order))
			if order != catalog.Asc && order != catalog.Desc {
				return fmt.Errorf("invalid order %q: want asc or desc", o.order)
			}

			results := a.cat.SearchProperties(strings.Join(args, " "), o.filter(cmd.Flags().Changed))
			if o.sortBy != "" {
				results = catalog.SortProperties(results, o.sortBy, order)
			}
			if o.limit > 0 && len(results) > o.limit {
				results = results[:o.limit]
			}
			return a.writeListings(results)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.propertyType, "type", "", "property type (apartment, villa, townhouse, office, plot, penthouse)")
	f.StringVar(&o.transaction, "transaction", "", "transaction type (buy, rent, off-plan)")
	f.StringVar(&o.location, "location", "", "exact location name")
	f.StringVar(&o.community, "community", "", "exact community name")
	f.StringVar(&o.developer, "developer", "", "exact developer name")
	f.StringVar(&o.status, "status", "", "status (ready, under-construction, off-plan, sold)")
	f.StringVar(&o.paymentPlan, "payment-plan", "", "exact payment plan")
	f.StringVar(&o.completion, "completion", "", "exact completion date")
	f.Float64Var(&o.minPrice, "min-price", 0, "minimum price, inclusive")
	f.Float64Var(&o.maxPrice, "max-price", 0, "maximum price, inclusive")
	f.Float64Var(&o.minArea, "min-area", 0, "minimum area, inclusive")
	f.Float64Var(&o.maxArea, "max-area", 0, "maximum area, inclusive")
	f.IntVar(&o.bedrooms, "bedrooms", 0, "exact number of bedrooms")
	f.IntVar(&o.bathrooms, "bathrooms", 0, "exact number of bathrooms")
	f.BoolVar(&o.furnished, "furnished", false, "furnished listings")
	f.BoolVar(&o.luxury, "luxury", false, "luxury listings")
	f.BoolVar(&o.beachfront, "beachfront", false, "beachfront listings")
	f.BoolVar(&o.waterfront, "waterfront", false, "waterfront listings")
	f.BoolVar(&o.golfCourse, "golf-course", false, "golf course listings")
	f.StringSliceVar(&o.amenities, "amenity", nil, "required amenity; repeat to require several")
	f.StringSliceVar(&o.features, "feature", nil, "required feature; repeat to require several")
	f.StringVar(&o.sortBy, "sort", "", "sort key (price, area, pricePerSqft, bedrooms, listedDate, views, or any listing field)")
	f.StringVar(&o.order, "order", string(catalog.Asc), "sort order: asc or desc")
	f.IntVar(&o.limit, "limit", 0, "maximum number of results, 0 for all")
	return cmd
}

// filter builds a search filter holding only the flags the user set.
func (o *searchOptions) filter(changed func(name string) bool) *domain.SearchFilter {
	var f domain.SearchFilter

	if changed("type") {
		f.Type = domain.Ptr(domain.PropertyType(o.propertyType))
	}
	if changed("transaction") {
		f.TransactionType = domain.Ptr(domain.TransactionType(o.transaction))
	}
	if changed("status") {
		f.Status = domain.Ptr(domain.Status(o.status))
	}
	setIf(changed, "location", &f.Location, o.location)
	setIf(changed, "community", &f.Community, o.community)
	setIf(changed, "developer", &f.Developer, o.developer)
	setIf(changed, "payment-plan", &f.PaymentPlan, o.paymentPlan)
	setIf(changed, "completion", &f.CompletionDate, o.completion)
	setIf(changed, "min-price", &f.MinPrice, o.minPrice)
	setIf(changed, "max-price", &f.MaxPrice, o.maxPrice)
	setIf(changed, "min-area", &f.MinArea, o.minArea)
	setIf(changed, "max-area", &f.MaxArea, o.maxArea)
	setIf(changed, "bedrooms", &f.Bedrooms, o.bedrooms)
	setIf(changed, "bathrooms", &f.Bathrooms, o.bathrooms)
	setIf(changed, "furnished", &f.Furnished, o.furnished)
	setIf(changed, "luxury", &f.Luxury, o.luxury)
	setIf(changed, "beachfront", &f.Beachfront, o.beachfront)
	setIf(changed, "waterfront", &f.Waterfront, o.waterfront)
	setIf(changed, "golf-course", &f.GolfCourse, o.golfCourse)

	f.Amenities = o.amenities
	f.Features = o.features
	return &f
}

func setIf[T any](changed func(string) bool, name string, dst **T, v T) {
	if changed(name) {
		*dst = domain.Ptr(v)
	}
}
