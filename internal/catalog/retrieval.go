package catalog

import (
	"fmt"

	"github.com/johnwards/propcat/internal/domain"
)

// DefaultFeaturedLimit is used by FeaturedProperties when limit <= 0.
const DefaultFeaturedLimit = 6

// FindByID returns the listing with the given id without recording a view.
func (m *Manager) FindByID(id string) (*domain.Property, bool) {
	for _, p := range m.properties {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// RecordView increments p's view counter and moves it to the front of the
// recently viewed list.
func (m *Manager) RecordView(p *domain.Property) {
	p.Views++
	m.recentlyViewed.Push(p)
	m.logger.Debug("recorded view", "property", p.ID, "views", p.Views)
}

// GetPropertyByID looks up a listing and records a view of it. Every call
// counts, so repeated fetches of the same id keep raising Views.
func (m *Manager) GetPropertyByID(id string) (*domain.Property, error) {
	p, ok := m.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("property %s: %w", id, ErrNotFound)
	}
	m.RecordView(p)
	return p, nil
}

// FeaturedProperties returns up to limit listings that are luxury,
// beachfront or off-plan, in catalog order.
func (m *Manager) FeaturedProperties(limit int) []*domain.Property {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return m.where(limit, func(p *domain.Property) bool {
		return p.Luxury || p.Beachfront || p.Status == domain.StatusOffPlan
	})
}

// PropertiesByLocation returns listings whose Location equals location.
// A limit <= 0 returns all of them.
func (m *Manager) PropertiesByLocation(location string, limit int) []*domain.Property {
	return m.where(limit, func(p *domain.Property) bool { return p.Location == location })
}

// PropertiesByDeveloper returns listings whose Developer equals developer.
func (m *Manager) PropertiesByDeveloper(developer string, limit int) []*domain.Property {
	return m.where(limit, func(p *domain.Property) bool { return p.Developer == developer })
}

// NewProjects returns off-plan and under-construction listings.
func (m *Manager) NewProjects(limit int) []*domain.Property {
	return m.where(limit, (*domain.Property).IsNewProject)
}

// LuxuryProperties returns listings flagged as luxury.
func (m *Manager) LuxuryProperties(limit int) []*domain.Property {
	return m.where(limit, func(p *domain.Property) bool { return p.Luxury })
}

// BeachfrontProperties returns beachfront or waterfront listings.
func (m *Manager) BeachfrontProperties(limit int) []*domain.Property {
	return m.where(limit, func(p *domain.Property) bool { return p.Beachfront || p.Waterfront })
}

// where collects listings matching keep in catalog order, stopping at limit
// when limit > 0.
func (m *Manager) where(limit int, keep func(*domain.Property) bool) []*domain.Property {
	out := []*domain.Property{}
	for _, p := range m.properties {
		if limit > 0 && len(out) == limit {
			break
		}
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// AddToFavorites marks id as a favorite. Adding an id twice is a no-op.
// The id is not checked against the catalog.
func (m *Manager) AddToFavorites(id string) {
	m.favorites.Add(id)
}

// RemoveFromFavorites drops id from the favorites.
func (m *Manager) RemoveFromFavorites(id string) {
	m.favorites.Remove(id)
}

// Favorites returns favorite ids in the order they were added.
func (m *Manager) Favorites() []string {
	return m.favorites.Items()
}

// FavoriteProperties resolves the favorites through GetPropertyByID, so each
// resolved listing gets a recorded view. Ids missing from the catalog are
// skipped.
func (m *Manager) FavoriteProperties() []*domain.Property {
	out := []*domain.Property{}
	for _, id := range m.favorites.Items() {
		p, err := m.GetPropertyByID(id)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
