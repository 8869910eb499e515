package catalog

import (
	"slices"
	"time"

	"github.com/johnwards/propcat/internal/domain"
)

// Trend classifies how prices for a location and type are moving.
type Trend string

// Market trends.
const (
	TrendRising    Trend = "rising"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Recommendation is a coarse investment rating.
type Recommendation string

// Recommendation tiers, best first.
const (
	RecommendExcellent Recommendation = "Excellent Investment"
	RecommendGood      Recommendation = "Good Investment"
	RecommendFair      Recommendation = "Fair Investment"
	RecommendCareful   Recommendation = "Consider Carefully"
)

const (
	// defaultLocationScore is used when a listing's location is not in the
	// catalog.
	defaultLocationScore = 50

	trendWindow    = 90 * 24 * time.Hour
	trendThreshold = 5.0
	popularLimit   = 5
)

// InvestmentAnalysis summarises a listing for investors.
type InvestmentAnalysis struct {
	Property       *domain.Property `json:"property"`
	ROI            float64          `json:"roi"`
	RentalYield    float64          `json:"rentalYield"`
	PricePerSqft   float64          `json:"pricePerSqft"`
	LocationScore  float64          `json:"locationScore"`
	MarketTrend    Trend            `json:"marketTrend"`
	Recommendation Recommendation   `json:"recommendation"`
}

// PriceRange is one bucket of the price histogram.
type PriceRange struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// LocationCount is the number of listings in a location.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// MarketStatistics summarises the whole catalog.
type MarketStatistics struct {
	TotalProperties  int                         `json:"totalProperties"`
	AvgPrice         float64                     `json:"avgPrice"`
	PriceRanges      []PriceRange                `json:"priceRanges"`
	PopularLocations []LocationCount             `json:"popularLocations"`
	PropertyTypes    map[domain.PropertyType]int `json:"propertyTypes"`
}

type priceBucket struct {
	label string
	below float64
}

// priceBuckets are the histogram bounds; a price falls in the first bucket
// whose upper bound it is below.
var priceBuckets = []priceBucket{
	{"Under 1M", 1_000_000},
	{"1M - 2M", 2_000_000},
	{"2M - 5M", 5_000_000},
	{"5M - 10M", 10_000_000},
}

const aboveLastBucket = "Above 10M"

// InvestmentAnalysis builds the investor view of a listing. The lookup goes
// through GetPropertyByID and therefore records a view.
func (m *Manager) InvestmentAnalysis(id string) (*InvestmentAnalysis, error) {
	p, err := m.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}

	return &InvestmentAnalysis{
		Property:       p,
		ROI:            p.ROI,
		RentalYield:    p.RentalYield,
		PricePerSqft:   p.PricePerArea(),
		LocationScore:  m.LocationScore(p.Location),
		MarketTrend:    m.MarketTrend(p.Location, p.Type),
		Recommendation: m.InvestmentRecommendation(p),
	}, nil
}

// LocationScore returns the score of the named location, or 50 when the
// catalog has no such location.
func (m *Manager) LocationScore(name string) float64 {
	if l, ok := m.LocationByName(name); ok {
		return l.Score()
	}
	return defaultLocationScore
}

// MarketTrend compares the mean price of listings of type t in location
// listed in the last 90 days against the mean of all of them. Fewer than two
// listings, or none listed recently, is stable.
func (m *Manager) MarketTrend(location string, t domain.PropertyType) Trend {
	var all []*domain.Property
	for _, p := range m.properties {
		if p.Location == location && p.Type == t {
			all = append(all, p)
		}
	}
	if len(all) < 2 {
		return TrendStable
	}

	cutoff := m.now().Add(-trendWindow)
	var recent []*domain.Property
	for _, p := range all {
		if p.ListedDate.After(cutoff) {
			recent = append(recent, p)
		}
	}
	if len(recent) == 0 {
		return TrendStable
	}

	avg := meanPrice(all)
	change := (meanPrice(recent) - avg) / avg * 100
	switch {
	case change > trendThreshold:
		return TrendRising
	case change < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// InvestmentRecommendation rates p on ROI + rental yield + location score/10.
func (m *Manager) InvestmentRecommendation(p *domain.Property) Recommendation {
	score := p.ROI + p.RentalYield + m.LocationScore(p.Location)/10
	switch {
	case score > 20:
		return RecommendExcellent
	case score > 15:
		return RecommendGood
	case score > 10:
		return RecommendFair
	default:
		return RecommendCareful
	}
}

// MarketStatistics summarises every listing in the catalog. The average
// price of an empty catalog is NaN.
func (m *Manager) MarketStatistics() *MarketStatistics {
	return &MarketStatistics{
		TotalProperties:  len(m.properties),
		AvgPrice:         meanPrice(m.properties),
		PriceRanges:      m.PriceRanges(),
		PopularLocations: m.PopularLocations(),
		PropertyTypes:    m.PropertyTypeDistribution(),
	}
}

// PriceRanges counts listings per price bucket. All five buckets are always
// present, in ascending order.
func (m *Manager) PriceRanges() []PriceRange {
	ranges := make([]PriceRange, len(priceBuckets)+1)
	for i, b := range priceBuckets {
		ranges[i].Label = b.label
	}
	ranges[len(priceBuckets)].Label = aboveLastBucket

	for _, p := range m.properties {
		i := slices.IndexFunc(priceBuckets, func(b priceBucket) bool { return p.Price < b.below })
		if i < 0 {
			i = len(priceBuckets)
		}
		ranges[i].Count++
	}
	return ranges
}

// PopularLocations returns the five locations with the most listings, most
// first. Ties keep the order in which locations first appear.
func (m *Manager) PopularLocations() []LocationCount {
	counts := []LocationCount{}
	index := make(map[string]int)
	for _, p := range m.properties {
		i, ok := index[p.Location]
		if !ok {
			i = len(counts)
			index[p.Location] = i
			counts = append(counts, LocationCount{Location: p.Location})
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b LocationCount) int {
		return b.Count - a.Count
	})
	if len(counts) > popularLimit {
		counts = counts[:popularLimit]
	}
	return counts
}

// PropertyTypeDistribution counts listings per property type.
func (m *Manager) PropertyTypeDistribution() map[domain.PropertyType]int {
	dist := make(map[domain.PropertyType]int)
	for _, p := range m.properties {
		dist[p.Type]++
	}
	return dist
}

func meanPrice(ps []*domain.Property) float64 {
	var sum float64
	for _, p := range ps {
		sum += p.Price
	}
	return sum / float64(len(ps))
}
