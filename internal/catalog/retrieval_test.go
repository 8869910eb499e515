package catalog_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/johnwards/propcat/internal/catalog"
	"github.com/johnwards/propcat/internal/domain"
)

func TestGetPropertyByIDRecordsViews(t *testing.T) {
	m := newTestManager(t, sampleCatalog())

	for want := 1; want <= 3; want++ {
		p, err := m.GetPropertyByID("p2")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if p.Views != want {
			t.Errorf("views after call %d = %d, want %d", want, p.Views, want)
		}
	}

	if diff := cmp.Diff([]string{"p2"}, propIDs(m.RecentlyViewed())); diff != "" {
		t.Errorf("recently viewed mismatch (-want +got):\n%s", diff)
	}
}

func TestGetPropertyByIDNotFound(t *testing.T) {
	m := newTestManager(t, sampleCatalog())

	p, err := m.GetPropertyByID("missing")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if p != nil {
		t.Errorf("expected nil property, got %+v", p)
	}
	if len(m.RecentlyViewed()) != 0 {
		t.Error("a miss should not touch recently viewed")
	}
}

func TestFindByIDIsPure(t *testing.T) {
	m := newTestManager(t, sampleCatalog())

	p, ok := m.FindByID("p1")
	if !ok {
		t.Fatal("expected p1 to be found")
	}
	if p.Views != 0 {
		t.Errorf("views = %d, want 0", p.Views)
	}
	if len(m.RecentlyViewed()) != 0 {
		t.Error("FindByID should not touch recently viewed")
	}

	if _, ok := m.FindByID("missing"); ok {
		t.Error("expected missing id not to be found")
	}
}

func TestRecordView(t *testing.T) {
	m := newTestManager(t, sampleCatalog())
	p, _ := m.FindByID("p4")

	m.RecordView(p)
	m.RecordView(p)

	if p.Views != 2 {
		t.Errorf("views = %d, want 2", p.Views)
	}
	if diff := cmp.Diff([]string{"p4"}, propIDs(m.RecentlyViewed())); diff != "" {
		t.Errorf("recently viewed mismatch (-want +got):\n%s", diff)
	}
}

func TestRecentlyViewedBoundedAndUnique(t *testing.T) {
	var in []domain.Property
	for i := 0; i < 12; i++ {
		in = append(in, domain.Property{ID: "r" + strconv.Itoa(i)})
	}
	m := newTestManager(t, catalog.Collections{Properties: props(in...)})

	for i := 0; i < 12; i++ {
		if _, err := m.GetPropertyByID("r" + strconv.Itoa(i)); err != nil {
			t.Fatalf("get: %v", err)
		}
	}
	if _, err := m.GetPropertyByID("r5"); err != nil {
		t.Fatalf("get: %v", err)
	}

	got := propIDs(m.RecentlyViewed())
	want := []string{"r5", "r11", "r10", "r9", "r8", "r7", "r6", "r4", "r3", "r2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recently viewed mismatch (-want +got):\n%s", diff)
	}
}

func TestFeaturedProperties(t *testing.T) {
	m := newTestManager(t, sampleCatalog())

	if diff := cmp.Diff([]string{"p2", "p3", "p5"}, propIDs(m.FeaturedProperties(0))); diff != "" {
		t.Errorf("default limit mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"p2", "p3"}, propIDs(m.FeaturedProperties(2))); diff != "" {
		t.Errorf("limit 2 mismatch (-want +got):\n%s", diff)
	}
}

func TestFeaturedPropertiesDefaultLimit(t *testing.T) {
	var in []domain.Property
	for i := 0; i < 9; i++ {
		in = append(in, domain.Property{ID: "lux" + strconv.Itoa(i), Luxury: true})
	}
	m := newTestManager(t, catalog.Collections{Properties: props(in...)})

	if got := len(m.FeaturedProperties(0)); got != catalog.DefaultFeaturedLimit {
		t.Errorf("featured count = %d, want %d", got, catalog.DefaultFeaturedLimit)
	}
}

func TestPredicateLookups(t *testing.T) {
	m := newTestManager(t, sampleCatalog())

	tests := []struct {
		name string
		got  []*domain.Property
		want []string
	}{
		{"by location", m.PropertiesByLocation("Dubai Marina", 0), []string{"p1", "p5"}},
		{"by location limited", m.PropertiesByLocation("Dubai Marina", 1), []string{"p1"}},
		{"by unknown location", m.PropertiesByLocation("Atlantis", 0), []string{}},
		{"by developer", m.PropertiesByDeveloper("Emaar", 0), []string{"p1", "p3", "p4"}},
		{"new projects", m.NewProjects(0), []string{"p3", "p4"}},
		{"luxury", m.LuxuryProperties(0), []string{"p2", "p5"}},
		{"luxury limited", m.LuxuryProperties(1), []string{"p2"}},
		{"beachfront or waterfront", m.BeachfrontProperties(0), []string{"p1", "p2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, propIDs(tt.got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFavorites(t *testing.T) {
	m := newTestManager(t, sampleCatalog())

	m.AddToFavorites("p1")
	m.AddToFavorites("p1")
	if diff := cmp.Diff([]string{"p1"}, m.Favorites()); diff != "" {
		t.Errorf("favorites mismatch (-want +got):\n%s", diff)
	}

	m.AddToFavorites("ghost")
	m.AddToFavorites("p2")

	favs := m.FavoriteProperties()
	if diff := cmp.Diff([]string{"p1", "p2"}, propIDs(favs)); diff != "" {
		t.Errorf("favorite properties mismatch (-want +got):\n%s", diff)
	}
	for _, p := range favs {
		if p.Views != 1 {
			t.Errorf("%s views = %d, want 1", p.ID, p.Views)
		}
	}

	m.RemoveFromFavorites("p1")
	m.RemoveFromFavorites("never-added")
	if diff := cmp.Diff([]string{"ghost", "p2"}, m.Favorites()); diff != "" {
		t.Errorf("favorites mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupsByName(t *testing.T) {
	m := newTestManager(t, sampleCatalog())

	if l, ok := m.LocationByName("Dubai Marina"); !ok || l.ID != "l1" {
		t.Errorf("LocationByName = %v, %v", l, ok)
	}
	if _, ok := m.LocationByName("Atlantis"); ok {
		t.Error("expected unknown location to miss")
	}
	if d, ok := m.DeveloperByName("Emaar"); !ok || d.ID != "d1" {
		t.Errorf("DeveloperByName = %v, %v", d, ok)
	}
	if a, ok := m.AgentByID("a1"); !ok || a.Name != "Sara Khan" {
		t.Errorf("AgentByID = %v, %v", a, ok)
	}
	if _, ok := m.AgentByID("a9"); ok {
		t.Error("expected unknown agent to miss")
	}
}
