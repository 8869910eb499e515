package domain_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/johnwards/propcat/internal/domain"
)

func TestNewPropertyDefaults(t *testing.T) {
	p := domain.NewProperty(domain.Property{ID: "p1", Price: 1000000})

	if p.Currency != "AED" {
		t.Errorf("Currency = %q, want %q", p.Currency, "AED")
	}
	if p.AreaUnit != "sqft" {
		t.Errorf("AreaUnit = %q, want %q", p.AreaUnit, "sqft")
	}
	if p.Features == nil || p.Images == nil || p.Amenities == nil {
		t.Error("expected empty, non-nil sequences")
	}
	if p.Views != 0 || p.Inquiries != 0 || p.Parking != 0 {
		t.Errorf("expected zero counters, got views=%d inquiries=%d parking=%d", p.Views, p.Inquiries, p.Parking)
	}
	if p.Luxury || p.Furnished || p.MaidRoom {
		t.Error("expected flags to default to false")
	}
}

func TestNewPropertyKeepsSuppliedValues(t *testing.T) {
	in := domain.Property{
		Currency: "USD",
		AreaUnit: "sqm",
		Features: []string{"view", "view"},
	}
	p := domain.NewProperty(in)

	if p.Currency != "USD" || p.AreaUnit != "sqm" {
		t.Errorf("got currency=%q unit=%q", p.Currency, p.AreaUnit)
	}
	if diff := cmp.Diff([]string{"view", "view"}, p.Features); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestFormattedPrice(t *testing.T) {
	p := domain.NewProperty(domain.Property{Price: 1250000})
	if got, want := p.FormattedPrice(), "AED 1,250,000"; got != want {
		t.Errorf("FormattedPrice() = %q, want %q", got, want)
	}

	p = domain.NewProperty(domain.Property{Price: 950, Currency: "USD"})
	if got, want := p.FormattedPrice(), "USD 950"; got != want {
		t.Errorf("FormattedPrice() = %q, want %q", got, want)
	}
}

func TestDetails(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Property
		want string
	}{
		{
			name: "no parking",
			in:   domain.Property{Bedrooms: 2, Bathrooms: 3, Area: 1450},
			want: "2 Beds | 3 Baths | 1,450 sqft",
		},
		{
			name: "with parking",
			in:   domain.Property{Bedrooms: 5, Bathrooms: 6, Area: 12000, AreaUnit: "sqm", Parking: 2},
			want: "5 Beds | 6 Baths | 12,000 sqm | 2 Parking",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.NewProperty(tt.in).Details(); got != tt.want {
				t.Errorf("Details() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPricePerArea(t *testing.T) {
	stored := domain.NewProperty(domain.Property{Price: 1000000, Area: 1000, PricePerSqft: 1234})
	if got := stored.PricePerArea(); got != 1234 {
		t.Errorf("stored PricePerArea() = %v, want 1234", got)
	}

	derived := domain.NewProperty(domain.Property{Price: 1000000, Area: 3000})
	if got := derived.PricePerArea(); got != 333 {
		t.Errorf("derived PricePerArea() = %v, want 333", got)
	}

	noArea := domain.NewProperty(domain.Property{Price: 1000000})
	if got := noArea.PricePerArea(); !math.IsInf(got, 1) {
		t.Errorf("PricePerArea() with zero area = %v, want +Inf", got)
	}
}

func TestTagsOrder(t *testing.T) {
	p := domain.NewProperty(domain.Property{
		StudyRoom:  true,
		MaidRoom:   true,
		GolfCourse: true,
		Waterfront: true,
		Beachfront: true,
		Furnished:  true,
		Luxury:     true,
		Balcony:    true,
	})

	want := []string{"Luxury", "Furnished", "Beachfront", "Waterfront", "Golf Course", "Maid's Room", "Study Room"}
	if diff := cmp.Diff(want, p.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}

	p = domain.NewProperty(domain.Property{Furnished: true, StudyRoom: true})
	if diff := cmp.Diff([]string{"Furnished", "Study Room"}, p.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}

	if got := domain.NewProperty(domain.Property{}).Tags(); len(got) != 0 {
		t.Errorf("expected no tags, got %v", got)
	}
}

func TestIsNewProject(t *testing.T) {
	for status, want := range map[domain.Status]bool{
		domain.StatusOffPlan:           true,
		domain.StatusUnderConstruction: true,
		domain.StatusReady:             false,
		domain.StatusSold:              false,
		"":                             false,
	} {
		p := domain.NewProperty(domain.Property{Status: status})
		if got := p.IsNewProject(); got != want {
			t.Errorf("IsNewProject() for %q = %v, want %v", status, got, want)
		}
	}
}
