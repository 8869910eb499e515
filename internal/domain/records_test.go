package domain_test

import (
	"testing"

	"github.com/johnwards/propcat/internal/domain"
)

func TestLocationScore(t *testing.T) {
	l := domain.NewLocation(domain.Location{
		Amenities:        []string{"a", "b", "c"},
		Transportation:   []string{"metro", "tram"},
		Schools:          []string{"school"},
		InvestmentRating: 10,
	})
	if got := l.Score(); got != 24 {
		t.Errorf("Score() = %v, want 24", got)
	}
}

func TestLocationScoreCapped(t *testing.T) {
	amenities := make([]string, 50)
	l := domain.NewLocation(domain.Location{Amenities: amenities, InvestmentRating: 9})
	if got := l.Score(); got != 100 {
		t.Errorf("Score() = %v, want 100", got)
	}
}

func TestLocationScoreEmpty(t *testing.T) {
	if got := domain.NewLocation(domain.Location{}).Score(); got != 0 {
		t.Errorf("Score() = %v, want 0", got)
	}
}

func TestDeveloperCompletionRate(t *testing.T) {
	d := domain.NewDeveloper(domain.Developer{
		Projects:          []string{"a", "b", "c", "d"},
		CompletedProjects: []string{"a", "b"},
	})
	if got := d.CompletionRate(); got != 50 {
		t.Errorf("CompletionRate() = %d, want 50", got)
	}

	d = domain.NewDeveloper(domain.Developer{
		Projects:          []string{"a", "b", "c"},
		CompletedProjects: []string{"a", "b"},
	})
	if got := d.CompletionRate(); got != 67 {
		t.Errorf("CompletionRate() = %d, want 67", got)
	}

	d = domain.NewDeveloper(domain.Developer{CompletedProjects: []string{"x"}})
	if got := d.CompletionRate(); got != 0 {
		t.Errorf("CompletionRate() with no projects = %d, want 0", got)
	}
}

func TestAgentTotalTransactions(t *testing.T) {
	a := domain.NewAgent(domain.Agent{PropertiesSold: 12, PropertiesRented: 30})
	if got := a.TotalTransactions(); got != 42 {
		t.Errorf("TotalTransactions() = %d, want 42", got)
	}
	if got := domain.NewAgent(domain.Agent{}).TotalTransactions(); got != 0 {
		t.Errorf("TotalTransactions() = %d, want 0", got)
	}
}
