package domain

// LocationType classifies an area of the city.
type LocationType string

// Location types.
const (
	LocationCommunity LocationType = "community"
	LocationDistrict  LocationType = "district"
	LocationLandmark  LocationType = "landmark"
	LocationIsland    LocationType = "island"
)

// maxLocationScore caps Location.Score.
const maxLocationScore = 100

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Location is a community, district, landmark or island that listings refer
// to by Name.
type Location struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Type        LocationType `json:"type" yaml:"type"`
	Description string       `json:"description,omitempty" yaml:"description"`
	Zone        int          `json:"zone,omitempty" yaml:"zone"`

	AveragePrice         float64  `json:"averagePrice,omitempty" yaml:"averagePrice"`
	PriceRange           string   `json:"priceRange,omitempty" yaml:"priceRange"`
	PopularPropertyTypes []string `json:"popularPropertyTypes" yaml:"popularPropertyTypes"`

	Amenities       []string `json:"amenities" yaml:"amenities"`
	NearbyLandmarks []string `json:"nearbyLandmarks" yaml:"nearbyLandmarks"`
	Transportation  []string `json:"transportation" yaml:"transportation"`
	Schools         []string `json:"schools" yaml:"schools"`
	Hospitals       []string `json:"hospitals" yaml:"hospitals"`
	ShoppingCenters []string `json:"shoppingCenters" yaml:"shoppingCenters"`

	Coordinates        *Coordinates `json:"coordinates,omitempty" yaml:"coordinates"`
	DistanceToAirport  float64      `json:"distanceToAirport,omitempty" yaml:"distanceToAirport"`
	DistanceToDowntown float64      `json:"distanceToDowntown,omitempty" yaml:"distanceToDowntown"`
	DistanceToBeach    float64      `json:"distanceToBeach,omitempty" yaml:"distanceToBeach"`

	InvestmentRating float64  `json:"investmentRating,omitempty" yaml:"investmentRating"`
	RentalDemand     string   `json:"rentalDemand,omitempty" yaml:"rentalDemand"`
	FutureProjects   []string `json:"futureProjects" yaml:"futureProjects"`
}

// NewLocation returns a copy of in with nil sequences replaced by empty ones.
func NewLocation(in Location) *Location {
	l := in
	l.PopularPropertyTypes = orEmpty(l.PopularPropertyTypes)
	l.Amenities = orEmpty(l.Amenities)
	l.NearbyLandmarks = orEmpty(l.NearbyLandmarks)
	l.Transportation = orEmpty(l.Transportation)
	l.Schools = orEmpty(l.Schools)
	l.Hospitals = orEmpty(l.Hospitals)
	l.ShoppingCenters = orEmpty(l.ShoppingCenters)
	l.FutureProjects = orEmpty(l.FutureProjects)
	return &l
}

// Score is a 0-100 heuristic weighting amenities, transport links, schools
// and the investment rating.
func (l *Location) Score() float64 {
	score := float64(2*len(l.Amenities) + 3*len(l.Transportation) + 2*len(l.Schools))
	score += l.InvestmentRating
	return min(score, maxLocationScore)
}
