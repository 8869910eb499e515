package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/johnwards/propcat/internal/domain"
)

// SortOrder is the direction of a sort. Anything other than Desc sorts
// ascending.
type SortOrder string

// Sort orders.
const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Sort keys with dedicated handling. Other listing field names are also
// accepted by SortProperties.
const (
	SortByPrice        = "price"
	SortByArea         = "area"
	SortByPricePerSqft = "pricePerSqft"
	SortByBedrooms     = "bedrooms"
	SortByListedDate   = "listedDate"
	SortByViews        = "views"
)

// SearchProperties returns the listings matching query and f, in catalog
// order, and appends an entry to the search history.
//
// The query is matched case-insensitively as a substring of the title,
// location, community, developer or description. A blank query skips the
// text stage. Fields left empty on a listing never match.
func (m *Manager) SearchProperties(query string, f *domain.SearchFilter) []*domain.Property {
	results := m.properties

	if strings.TrimSpace(query) != "" {
		term := strings.ToLower(query)
		matched := make([]*domain.Property, 0, len(results))
		for _, p := range results {
			if matchesText(p, term) {
				matched = append(matched, p)
			}
		}
		results = matched
	}

	results = ApplyFilters(results, f)

	m.searchHistory.Push(SearchEntry{
		ID:          m.newID(),
		Query:       query,
		Filter:      f.Clone(),
		ResultCount: len(results),
		Timestamp:   m.now(),
	})
	m.logger.Debug("search properties", "query", query, "filtered", f.HasActiveFilters(), "results", len(results))

	return results
}

func matchesText(p *domain.Property, term string) bool {
	for _, field := range []string{p.Title, p.Location, p.Community, p.Developer, p.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// ApplyFilters returns the listings in properties that satisfy every active
// constraint of f. It does not touch search history.
func ApplyFilters(properties []*domain.Property, f *domain.SearchFilter) []*domain.Property {
	out := make([]*domain.Property, 0, len(properties))
	for _, p := range properties {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortProperties returns a sorted copy of properties; the input is left as
// is. An empty sortBy sorts by price. pricePerSqft uses the derived
// PricePerArea value. Unknown keys leave the order unchanged.
func SortProperties(properties []*domain.Property, sortBy string, order SortOrder) []*domain.Property {
	if sortBy == "" {
		sortBy = SortByPrice
	}
	compare := comparator(sortBy)

	out := slices.Clone(properties)
	slices.SortStableFunc(out, func(a, b *domain.Property) int {
		if order == Desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

func comparator(sortBy string) func(a, b *domain.Property) int {
	switch sortBy {
	case SortByPricePerSqft:
		return by(func(p *domain.Property) float64 { return p.PricePerArea() })
	case SortByListedDate:
		return byTime(func(p *domain.Property) time.Time { return p.ListedDate })
	case "lastUpdated":
		return byTime(func(p *domain.Property) time.Time { return p.LastUpdated })
	}
	if f, ok := numericFields[sortBy]; ok {
		return by(f)
	}
	if f, ok := textFields[sortBy]; ok {
		return by(f)
	}
	if f, ok := flagFields[sortBy]; ok {
		return by(func(p *domain.Property) int {
			if f(p) {
				return 1
			}
			return 0
		})
	}
	return func(_, _ *domain.Property) int { return 0 }
}

func by[T cmp.Ordered](key func(*domain.Property) T) func(a, b *domain.Property) int {
	return func(a, b *domain.Property) int {
		return cmp.Compare(key(a), key(b))
	}
}

func byTime(key func(*domain.Property) time.Time) func(a, b *domain.Property) int {
	return func(a, b *domain.Property) int {
		return key(a).Compare(key(b))
	}
}

var numericFields = map[string]func(*domain.Property) float64{
	SortByPrice:     func(p *domain.Property) float64 { return p.Price },
	SortByArea:      func(p *domain.Property) float64 { return p.Area },
	SortByBedrooms:  func(p *domain.Property) float64 { return float64(p.Bedrooms) },
	SortByViews:     func(p *domain.Property) float64 { return float64(p.Views) },
	"bathrooms":     func(p *domain.Property) float64 { return float64(p.Bathrooms) },
	"parking":       func(p *domain.Property) float64 { return float64(p.Parking) },
	"serviceCharge": func(p *domain.Property) float64 { return p.ServiceCharge },
	"roi":           func(p *domain.Property) float64 { return p.ROI },
	"rentalYield":   func(p *domain.Property) float64 { return p.RentalYield },
	"appreciation":  func(p *domain.Property) float64 { return p.Appreciation },
	"inquiries":     func(p *domain.Property) float64 { return float64(p.Inquiries) },
}

var textFields = map[string]func(*domain.Property) string{
	"id":              func(p *domain.Property) string { return p.ID },
	"title":           func(p *domain.Property) string { return p.Title },
	"type":            func(p *domain.Property) string { return string(p.Type) },
	"transactionType": func(p *domain.Property) string { return string(p.TransactionType) },
	"status":          func(p *domain.Property) string { return string(p.Status) },
	"currency":        func(p *domain.Property) string { return p.Currency },
	"location":        func(p *domain.Property) string { return p.Location },
	"community":       func(p *domain.Property) string { return p.Community },
	"building":        func(p *domain.Property) string { return p.Building },
	"developer":       func(p *domain.Property) string { return p.Developer },
	"projectName":     func(p *domain.Property) string { return p.ProjectName },
	"completionDate":  func(p *domain.Property) string { return p.CompletionDate },
	"handoverDate":    func(p *domain.Property) string { return p.HandoverDate },
}

var flagFields = map[string]func(*domain.Property) bool{
	"furnished":  func(p *domain.Property) bool { return p.Furnished },
	"luxury":     func(p *domain.Property) bool { return p.Luxury },
	"beachfront": func(p *domain.Property) bool { return p.Beachfront },
	"waterfront": func(p *domain.Property) bool { return p.Waterfront },
	"golfCourse": func(p *domain.Property) bool { return p.GolfCourse },
}
