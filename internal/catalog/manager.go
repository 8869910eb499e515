// Package catalog is the in-memory query engine over a real-estate catalog.
// It searches, filters, sorts and summarises listings and keeps per-session
// favorites, recently viewed listings and search history.
//
// A Manager is not safe for concurrent use. Callers that share one across
// goroutines must serialize access, including read paths such as
// GetPropertyByID that record views.
package catalog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/johnwards/propcat/internal/domain"
	"github.com/johnwards/propcat/internal/session"
)

// Session limits.
const (
	RecentlyViewedCap = 10
	SearchHistoryCap  = 20
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = fmt.Errorf("not found")

// Collections is the record set a Manager queries.
type Collections struct {
	Properties []*domain.Property
	Locations  []*domain.Location
	Developers []*domain.Developer
	Agents     []*domain.Agent
}

// SearchEntry records one SearchProperties call.
type SearchEntry struct {
	ID          string               `json:"id"`
	Query       string               `json:"query"`
	Filter      *domain.SearchFilter `json:"filter,omitempty"`
	ResultCount int                  `json:"resultCount"`
	Timestamp   time.Time            `json:"timestamp"`
}

// Manager holds the catalog collections and session state.
type Manager struct {
	properties []*domain.Property
	locations  []*domain.Location
	developers []*domain.Developer
	agents     []*domain.Agent

	favorites      session.OrderedSet[string]
	recentlyViewed *session.Recent[string, *domain.Property]
	searchHistory  *session.Recent[string, SearchEntry]

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source used for search history timestamps and
// market trend windows.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithIDGenerator sets the function that ids search history entries.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) { m.newID = gen }
}

// New creates a Manager over c. The slices are held, not copied, so records
// mutated by the Manager (view counters) are visible to the caller.
func New(c Collections, opts ...Option) *Manager {
	m := &Manager{
		properties:     c.Properties,
		locations:      c.Locations,
		developers:     c.Developers,
		agents:         c.Agents,
		recentlyViewed: session.NewRecent(RecentlyViewedCap, func(p *domain.Property) string { return p.ID }),
		searchHistory:  session.NewRecent[string, SearchEntry](SearchHistoryCap, nil),
		now:            time.Now,
		newID:          uuid.NewString,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Properties returns the listing collection in catalog order.
func (m *Manager) Properties() []*domain.Property { return m.properties }

// Locations returns the location collection.
func (m *Manager) Locations() []*domain.Location { return m.locations }

// Developers returns the developer collection.
func (m *Manager) Developers() []*domain.Developer { return m.developers }

// Agents returns the agent collection.
func (m *Manager) Agents() []*domain.Agent { return m.agents }

// LocationByName returns the first location whose Name equals name.
func (m *Manager) LocationByName(name string) (*domain.Location, bool) {
	for _, l := range m.locations {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// DeveloperByName returns the first developer whose Name equals name.
func (m *Manager) DeveloperByName(name string) (*domain.Developer, bool) {
	for _, d := range m.developers {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// AgentByID returns the agent with the given id.
func (m *Manager) AgentByID(id string) (*domain.Agent, bool) {
	for _, a := range m.agents {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// RecentlyViewed returns the recently viewed listings, most recent first.
func (m *Manager) RecentlyViewed() []*domain.Property {
	return m.recentlyViewed.Items()
}

// SearchHistory returns past searches, most recent first.
func (m *Manager) SearchHistory() []SearchEntry {
	return m.searchHistory.Items()
}

// ClearSearchHistory forgets all past searches.
func (m *Manager) ClearSearchHistory() {
	m.searchHistory.Clear()
}
