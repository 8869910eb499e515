package domain

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// PropertyType classifies a listing.
type PropertyType string

// Property types.
const (
	TypeApartment PropertyType = "apartment"
	TypeVilla     PropertyType = "villa"
	TypeTownhouse PropertyType = "townhouse"
	TypeOffice    PropertyType = "office"
	TypePlot      PropertyType = "plot"
	TypePenthouse PropertyType = "penthouse"
)

// TransactionType is the kind of deal a listing is offered under.
type TransactionType string

// Transaction types.
const (
	TransactionBuy     TransactionType = "buy"
	TransactionRent    TransactionType = "rent"
	TransactionOffPlan TransactionType = "off-plan"
)

// Status is the construction or sale state of a listing.
type Status string

// Listing statuses.
const (
	StatusReady             Status = "ready"
	StatusUnderConstruction Status = "under-construction"
	StatusOffPlan           Status = "off-plan"
	StatusSold              Status = "sold"
)

// Default values applied by NewProperty.
const (
	DefaultCurrency = "AED"
	DefaultAreaUnit = "sqft"
)

// Property is a single real-estate listing. Location, Community and Developer
// refer to other records by name and are never verified.
type Property struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	Type            PropertyType    `json:"type" yaml:"type"`
	TransactionType TransactionType `json:"transactionType" yaml:"transactionType"`
	Status          Status          `json:"status" yaml:"status"`

	Price         float64 `json:"price" yaml:"price"`
	Currency      string  `json:"currency" yaml:"currency"`
	PricePerSqft  float64 `json:"pricePerSqft,omitempty" yaml:"pricePerSqft"`
	Bedrooms      int     `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms     int     `json:"bathrooms" yaml:"bathrooms"`
	Area          float64 `json:"area" yaml:"area"`
	AreaUnit      string  `json:"areaUnit" yaml:"areaUnit"`
	Parking       int     `json:"parking" yaml:"parking"`
	ServiceCharge float64 `json:"serviceCharge,omitempty" yaml:"serviceCharge"`
	ROI           float64 `json:"roi,omitempty" yaml:"roi"`
	RentalYield   float64 `json:"rentalYield,omitempty" yaml:"rentalYield"`
	Appreciation  float64 `json:"appreciation,omitempty" yaml:"appreciation"`

	Location    string `json:"location" yaml:"location"`
	Community   string `json:"community" yaml:"community"`
	Building    string `json:"building,omitempty" yaml:"building"`
	Developer   string `json:"developer" yaml:"developer"`
	ProjectName string `json:"projectName,omitempty" yaml:"projectName"`
	Agent       string `json:"agent,omitempty" yaml:"agent"`

	PaymentPlan string `json:"paymentPlan,omitempty" yaml:"paymentPlan"`
	DLDNumber   string `json:"dldNumber,omitempty" yaml:"dldNumber"`
	RERANumber  string `json:"reraNumber,omitempty" yaml:"reraNumber"`

	Furnished   bool `json:"furnished" yaml:"furnished"`
	Luxury      bool `json:"luxury" yaml:"luxury"`
	Beachfront  bool `json:"beachfront" yaml:"beachfront"`
	Waterfront  bool `json:"waterfront" yaml:"waterfront"`
	GolfCourse  bool `json:"golfCourse" yaml:"golfCourse"`
	Balcony     bool `json:"balcony" yaml:"balcony"`
	MaidRoom    bool `json:"maidRoom" yaml:"maidRoom"`
	StudyRoom   bool `json:"studyRoom" yaml:"studyRoom"`
	LaundryRoom bool `json:"laundryRoom" yaml:"laundryRoom"`

	Features  []string `json:"features" yaml:"features"`
	Images    []string `json:"images" yaml:"images"`
	Amenities []string `json:"amenities" yaml:"amenities"`

	ListedDate     time.Time `json:"listedDate" yaml:"listedDate"`
	LastUpdated    time.Time `json:"lastUpdated" yaml:"lastUpdated"`
	CompletionDate string    `json:"completionDate,omitempty" yaml:"completionDate"`
	HandoverDate   string    `json:"handoverDate,omitempty" yaml:"handoverDate"`

	Views     int `json:"views" yaml:"views"`
	Inquiries int `json:"inquiries" yaml:"inquiries"`
}

// NewProperty returns a copy of in with defaults filled for omitted fields.
// Nothing is validated.
func NewProperty(in Property) *Property {
	p := in
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.AreaUnit == "" {
		p.AreaUnit = DefaultAreaUnit
	}
	p.Features = orEmpty(p.Features)
	p.Images = orEmpty(p.Images)
	p.Amenities = orEmpty(p.Amenities)
	return &p
}

// FormattedPrice renders the price as "AED 1,250,000".
func (p *Property) FormattedPrice() string {
	return p.Currency + " " + humanize.Commaf(p.Price)
}

// Details renders the short bed/bath/area summary shown on listing cards.
func (p *Property) Details() string {
	s := strconv.Itoa(p.Bedrooms) + " Beds | " +
		strconv.Itoa(p.Bathrooms) + " Baths | " +
		humanize.Commaf(p.Area) + " " + p.AreaUnit
	if p.Parking > 0 {
		s += " | " + strconv.Itoa(p.Parking) + " Parking"
	}
	return s
}

// PricePerArea returns the stored PricePerSqft, or round(Price/Area) when it
// was not supplied. A zero Area yields +Inf or NaN.
func (p *Property) PricePerArea() float64 {
	if p.PricePerSqft != 0 {
		return p.PricePerSqft
	}
	return math.Round(p.Price / p.Area)
}

// Tags returns display labels for the listing's flags in a fixed order.
func (p *Property) Tags() []string {
	flags := []struct {
		set   bool
		label string
	}{
		{p.Luxury, "Luxury"},
		{p.Furnished, "Furnished"},
		{p.Beachfront, "Beachfront"},
		{p.Waterfront, "Waterfront"},
		{p.GolfCourse, "Golf Course"},
		{p.MaidRoom, "Maid's Room"},
		{p.StudyRoom, "Study Room"},
	}
	tags := []string{}
	for _, f := range flags {
		if f.set {
			tags = append(tags, f.label)
		}
	}
	return tags
}

// IsNewProject reports whether the listing is still being built.
func (p *Property) IsNewProject() bool {
	return p.Status == StatusOffPlan || p.Status == StatusUnderConstruction
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
