package domain

import "slices"

// SearchFilter is a set of optional listing constraints. A nil scalar or an
// empty sequence means "no constraint"; a non-nil false boolean requires the
// flag to be unset.
type SearchFilter struct {
	Type            *PropertyType    `json:"type,omitempty" yaml:"type"`
	TransactionType *TransactionType `json:"transactionType,omitempty" yaml:"transactionType"`
	Location        *string          `json:"location,omitempty" yaml:"location"`
	Community       *string          `json:"community,omitempty" yaml:"community"`
	Developer       *string          `json:"developer,omitempty" yaml:"developer"`

	MinPrice  *float64 `json:"minPrice,omitempty" yaml:"minPrice"`
	MaxPrice  *float64 `json:"maxPrice,omitempty" yaml:"maxPrice"`
	Bedrooms  *int     `json:"bedrooms,omitempty" yaml:"bedrooms"`
	Bathrooms *int     `json:"bathrooms,omitempty" yaml:"bathrooms"`
	MinArea   *float64 `json:"minArea,omitempty" yaml:"minArea"`
	MaxArea   *float64 `json:"maxArea,omitempty" yaml:"maxArea"`

	Furnished  *bool `json:"furnished,omitempty" yaml:"furnished"`
	Luxury     *bool `json:"luxury,omitempty" yaml:"luxury"`
	Beachfront *bool `json:"beachfront,omitempty" yaml:"beachfront"`
	Waterfront *bool `json:"waterfront,omitempty" yaml:"waterfront"`
	GolfCourse *bool `json:"golfCourse,omitempty" yaml:"golfCourse"`

	Status         *Status `json:"status,omitempty" yaml:"status"`
	PaymentPlan    *string `json:"paymentPlan,omitempty" yaml:"paymentPlan"`
	CompletionDate *string `json:"completionDate,omitempty" yaml:"completionDate"`

	Amenities []string `json:"amenities,omitempty" yaml:"amenities"`
	Features  []string `json:"features,omitempty" yaml:"features"`
}

// Ptr returns a pointer to v. Handy for building filters inline.
func Ptr[T any](v T) *T {
	return &v
}

// Reset clears every constraint in place.
func (f *SearchFilter) Reset() {
	*f = SearchFilter{}
}

// HasActiveFilters reports whether any constraint is set.
func (f *SearchFilter) HasActiveFilters() bool {
	if f == nil {
		return false
	}
	return f.Type != nil || f.TransactionType != nil ||
		f.Location != nil || f.Community != nil || f.Developer != nil ||
		f.MinPrice != nil || f.MaxPrice != nil ||
		f.Bedrooms != nil || f.Bathrooms != nil ||
		f.MinArea != nil || f.MaxArea != nil ||
		f.Furnished != nil || f.Luxury != nil || f.Beachfront != nil ||
		f.Waterfront != nil || f.GolfCourse != nil ||
		f.Status != nil || f.PaymentPlan != nil || f.CompletionDate != nil ||
		len(f.Amenities) > 0 || len(f.Features) > 0
}

// Clone returns a deep copy of f, or nil if f is nil.
func (f *SearchFilter) Clone() *SearchFilter {
	if f == nil {
		return nil
	}
	c := *f
	c.Type = clonePtr(f.Type)
	c.TransactionType = clonePtr(f.TransactionType)
	c.Location = clonePtr(f.Location)
	c.Community = clonePtr(f.Community)
	c.Developer = clonePtr(f.Developer)
	c.MinPrice = clonePtr(f.MinPrice)
	c.MaxPrice = clonePtr(f.MaxPrice)
	c.Bedrooms = clonePtr(f.Bedrooms)
	c.Bathrooms = clonePtr(f.Bathrooms)
	c.MinArea = clonePtr(f.MinArea)
	c.MaxArea = clonePtr(f.MaxArea)
	c.Furnished = clonePtr(f.Furnished)
	c.Luxury = clonePtr(f.Luxury)
	c.Beachfront = clonePtr(f.Beachfront)
	c.Waterfront = clonePtr(f.Waterfront)
	c.GolfCourse = clonePtr(f.GolfCourse)
	c.Status = clonePtr(f.Status)
	c.PaymentPlan = clonePtr(f.PaymentPlan)
	c.CompletionDate = clonePtr(f.CompletionDate)
	c.Amenities = slices.Clone(f.Amenities)
	c.Features = slices.Clone(f.Features)
	return &c
}

// Matches reports whether p satisfies every active constraint. A nil filter
// matches everything.
func (f *SearchFilter) Matches(p *Property) bool {
	if f == nil {
		return true
	}

	if !eq(f.Type, p.Type) || !eq(f.TransactionType, p.TransactionType) {
		return false
	}
	if !eq(f.Location, p.Location) || !eq(f.Community, p.Community) || !eq(f.Developer, p.Developer) {
		return false
	}

	// Range bounds are inclusive.
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if !eq(f.Bedrooms, p.Bedrooms) || !eq(f.Bathrooms, p.Bathrooms) {
		return false
	}
	if f.MinArea != nil && p.Area < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && p.Area > *f.MaxArea {
		return false
	}

	if !eq(f.Furnished, p.Furnished) || !eq(f.Luxury, p.Luxury) || !eq(f.Beachfront, p.Beachfront) ||
		!eq(f.Waterfront, p.Waterfront) || !eq(f.GolfCourse, p.GolfCourse) {
		return false
	}

	if !eq(f.Status, p.Status) || !eq(f.PaymentPlan, p.PaymentPlan) || !eq(f.CompletionDate, p.CompletionDate) {
		return false
	}

	return containsAll(p.Amenities, f.Amenities) && containsAll(p.Features, f.Features)
}

func eq[T comparable](want *T, got T) bool {
	return want == nil || *want == got
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
