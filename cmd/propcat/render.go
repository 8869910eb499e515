package main

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/johnwards/propcat/internal/catalog"
	"github.com/johnwards/propcat/internal/domain"
)

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) writeListings(ps []*domain.Property) error {
	if a.jsonOut {
		return a.writeJSON(ps)
	}
	if len(ps) == 0 {
		_, err := fmt.Fprintln(a.out, "no listings")
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tDETAILS\tLOCATION\tTAGS")
	for _, p := range ps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, p.FormattedPrice(), p.Details(), p.Location, strings.Join(p.Tags(), ", "))
	}
	return tw.Flush()
}

func (a *app) writeProperty(p *domain.Property) error {
	if a.jsonOut {
		return a.writeJSON(p)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", p.ID, p.Title)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "  %s\t%s\n", label, value)
		}
	}
	row("Price", p.FormattedPrice())
	row("Price per "+p.AreaUnit, money(p.Currency, p.PricePerArea()))
	row("Details", p.Details())
	row("Type", string(p.Type)+" / "+string(p.TransactionType)+" / "+string(p.Status))
	row("Location", joinNonEmpty(p.Location, p.Community, p.Building))
	row("Developer", joinNonEmpty(p.Developer, p.ProjectName))
	if ag, ok := a.cat.AgentByID(p.Agent); ok {
		row("Agent", joinNonEmpty(ag.Name, ag.Phone, ag.Email))
	}
	row("Payment plan", p.PaymentPlan)
	row("Completion", p.CompletionDate)
	row("Tags", strings.Join(p.Tags(), ", "))
	row("Amenities", strings.Join(p.Amenities, ", "))
	row("Features", strings.Join(p.Features, ", "))
	if !p.ListedDate.IsZero() {
		row("Listed", p.ListedDate.Format("2 Jan 2006"))
	}
	row("Views", humanize.Comma(int64(p.Views)))
	row("Description", p.Description)
	return tw.Flush()
}

// analysisView is InvestmentAnalysis with the price per area as null when
// the listing has no area to divide by.
type analysisView struct {
	Property       *domain.Property       `json:"property"`
	ROI            float64                `json:"roi"`
	RentalYield    float64                `json:"rentalYield"`
	PricePerSqft   *float64               `json:"pricePerSqft"`
	LocationScore  float64                `json:"locationScore"`
	MarketTrend    catalog.Trend          `json:"marketTrend"`
	Recommendation catalog.Recommendation `json:"recommendation"`
}

func (a *app) writeAnalysis(ia *catalog.InvestmentAnalysis) error {
	if a.jsonOut {
		return a.writeJSON(analysisView{
			Property:       ia.Property,
			ROI:            ia.ROI,
			RentalYield:    ia.RentalYield,
			PricePerSqft:   finite(ia.PricePerSqft),
			LocationScore:  ia.LocationScore,
			MarketTrend:    ia.MarketTrend,
			Recommendation: ia.Recommendation,
		})
	}

	p := ia.Property
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", p.ID, p.Title)
	fmt.Fprintf(tw, "  Price\t%s\n", p.FormattedPrice())
	fmt.Fprintf(tw, "  ROI\t%s%%\n", humanize.Ftoa(ia.ROI))
	fmt.Fprintf(tw, "  Rental yield\t%s%%\n", humanize.Ftoa(ia.RentalYield))
	fmt.Fprintf(tw, "  Price per %s\t%s\n", p.AreaUnit, money(p.Currency, ia.PricePerSqft))
	fmt.Fprintf(tw, "  Location score\t%s\n", humanize.Ftoa(ia.LocationScore))
	fmt.Fprintf(tw, "  Market trend\t%s\n", ia.MarketTrend)
	fmt.Fprintf(tw, "  Recommendation\t%s\n", ia.Recommendation)
	return tw.Flush()
}

// statsView is MarketStatistics with the mean price as null when the
// catalog is empty, since JSON has no NaN.
type statsView struct {
	TotalProperties  int                         `json:"totalProperties"`
	AvgPrice         *float64                    `json:"avgPrice"`
	PriceRanges      []catalog.PriceRange        `json:"priceRanges"`
	PopularLocations []catalog.LocationCount     `json:"popularLocations"`
	PropertyTypes    map[domain.PropertyType]int `json:"propertyTypes"`
}

func (a *app) writeStats(s *catalog.MarketStatistics) error {
	if a.jsonOut {
		v := statsView{
			TotalProperties:  s.TotalProperties,
			PriceRanges:      s.PriceRanges,
			PopularLocations: s.PopularLocations,
			PropertyTypes:    s.PropertyTypes,
		}
		v.AvgPrice = finite(s.AvgPrice)
		return a.writeJSON(v)
	}

	avg := money(domain.DefaultCurrency, math.Round(s.AvgPrice))

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Listings\t%d\n", s.TotalProperties)
	fmt.Fprintf(tw, "Average price\t%s\n", avg)
	fmt.Fprintln(tw, "Price ranges")
	for _, r := range s.PriceRanges {
		fmt.Fprintf(tw, "  %s\t%d\n", r.Label, r.Count)
	}
	fmt.Fprintln(tw, "Popular locations")
	for _, l := range s.PopularLocations {
		fmt.Fprintf(tw, "  %s\t%d\n", l.Location, l.Count)
	}
	fmt.Fprintln(tw, "Property types")
	types := make([]domain.PropertyType, 0, len(s.PropertyTypes))
	for t := range s.PropertyTypes {
		types = append(types, t)
	}
	slices.Sort(types)
	for _, t := range types {
		fmt.Fprintf(tw, "  %s\t%d\n", t, s.PropertyTypes[t])
	}
	return tw.Flush()
}

// finite returns a pointer to f, or nil for NaN and infinities.
func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// money renders an amount with grouped thousands, or n/a when it is not a
// finite number.
func money(currency string, f float64) string {
	if finite(f) == nil {
		return "n/a"
	}
	return currency + " " + humanize.Commaf(f)
}

func joinNonEmpty(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(s string) bool { return s == "" }), ", ")
}
