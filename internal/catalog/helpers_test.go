package catalog_test

import (
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/johnwards/propcat/internal/catalog"
	"github.com/johnwards/propcat/internal/domain"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

// newTestManager builds a Manager with a fixed clock, sequential history ids
// and a discarding logger.
func newTestManager(t *testing.T, c catalog.Collections) *catalog.Manager {
	t.Helper()
	seq := 0
	return catalog.New(c,
		catalog.WithClock(func() time.Time { return testNow }),
		catalog.WithIDGenerator(func() string {
			seq++
			return "search-" + strconv.Itoa(seq)
		}),
		catalog.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func props(in ...domain.Property) []*domain.Property {
	out := make([]*domain.Property, len(in))
	for i := range in {
		out[i] = domain.NewProperty(in[i])
	}
	return out
}

func propIDs(ps []*domain.Property) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

// sampleCatalog is a small mixed catalog used across tests.
func sampleCatalog() catalog.Collections {
	return catalog.Collections{
		Properties: props(
			domain.Property{
				ID: "p1", Title: "Marina Heights 2BR", Description: "High floor with sea view",
				Type: domain.TypeApartment, TransactionType: domain.TransactionBuy, Status: domain.StatusReady,
				Price: 1800000, Area: 1200, Bedrooms: 2, Bathrooms: 2,
				Location: "Dubai Marina", Community: "Marina Promenade", Developer: "Emaar",
				Waterfront: true, Amenities: []string{"Pool", "Gym"}, ListedDate: daysAgo(200),
				ROI: 7, RentalYield: 6,
			},
			domain.Property{
				ID: "p2", Title: "Palm Signature Villa", Description: "Private beach access",
				Type: domain.TypeVilla, TransactionType: domain.TransactionBuy, Status: domain.StatusReady,
				Price: 15000000, Area: 7500, Bedrooms: 5, Bathrooms: 6,
				Location: "Palm Jumeirah", Community: "Frond G", Developer: "Nakheel",
				Luxury: true, Beachfront: true, Amenities: []string{"Pool", "Gym", "Private Beach"},
				ListedDate: daysAgo(20), ROI: 5, RentalYield: 4,
			},
			domain.Property{
				ID: "p3", Title: "Creek Edge Studio", Description: "Compact investor unit",
				Type: domain.TypeApartment, TransactionType: domain.TransactionOffPlan, Status: domain.StatusOffPlan,
				Price: 750000, Area: 500, Bedrooms: 0, Bathrooms: 1,
				Location: "Dubai Creek Harbour", Community: "Creek Beach", Developer: "Emaar",
				ListedDate: daysAgo(10), ROI: 9, RentalYield: 8,
			},
			domain.Property{
				ID: "p4", Title: "Downtown Loft", Description: "Burj views",
				Type: domain.TypeApartment, TransactionType: domain.TransactionRent, Status: domain.StatusUnderConstruction,
				Price: 3200000, Area: 1600, Bedrooms: 2, Bathrooms: 3,
				Location: "Downtown Dubai", Community: "Opera District", Developer: "Emaar",
				Furnished: true, ListedDate: daysAgo(400),
			},
			domain.Property{
				ID: "p5", Title: "Marina Penthouse", Description: "Duplex with terrace",
				Type: domain.TypePenthouse, TransactionType: domain.TransactionBuy, Status: domain.StatusReady,
				Price: 8500000, Area: 4200, Bedrooms: 4, Bathrooms: 5,
				Location: "Dubai Marina", Community: "Marina Promenade", Developer: "Select Group",
				Luxury: true, ListedDate: daysAgo(5),
			},
		),
		Locations: []*domain.Location{
			domain.NewLocation(domain.Location{
				ID: "l1", Name: "Dubai Marina", Type: domain.LocationCommunity,
				Amenities:        []string{"Beach", "Mall", "Marina Walk"},
				Transportation:   []string{"Metro", "Tram"},
				Schools:          []string{"Marina School"},
				InvestmentRating: 10,
			}),
		},
		Developers: []*domain.Developer{
			domain.NewDeveloper(domain.Developer{ID: "d1", Name: "Emaar", Projects: []string{"a", "b"}}),
		},
		Agents: []*domain.Agent{
			domain.NewAgent(domain.Agent{ID: "a1", Name: "Sara Khan", PropertiesSold: 3}),
		},
	}
}
