package domain

// Agent is a broker that listings refer to by ID.
type Agent struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Photo      string `json:"photo,omitempty" yaml:"photo"`
	Title      string `json:"title,omitempty" yaml:"title"`
	Experience int    `json:"experience,omitempty" yaml:"experience"`

	Languages       []string `json:"languages" yaml:"languages"`
	Specializations []string `json:"specializations" yaml:"specializations"`
	Locations       []string `json:"locations" yaml:"locations"`

	Phone    string `json:"phone,omitempty" yaml:"phone"`
	Email    string `json:"email,omitempty" yaml:"email"`
	WhatsApp string `json:"whatsapp,omitempty" yaml:"whatsapp"`

	Rating             float64  `json:"rating,omitempty" yaml:"rating"`
	Reviews            []string `json:"reviews" yaml:"reviews"`
	PropertiesSold     int      `json:"propertiesSold" yaml:"propertiesSold"`
	PropertiesRented   int      `json:"propertiesRented" yaml:"propertiesRented"`
	ClientSatisfaction float64  `json:"clientSatisfaction,omitempty" yaml:"clientSatisfaction"`

	RERALicense    string   `json:"reraLicense,omitempty" yaml:"reraLicense"`
	Certifications []string `json:"certifications" yaml:"certifications"`
}

// NewAgent returns a copy of in with nil sequences replaced by empty ones.
func NewAgent(in Agent) *Agent {
	a := in
	a.Languages = orEmpty(a.Languages)
	a.Specializations = orEmpty(a.Specializations)
	a.Locations = orEmpty(a.Locations)
	a.Reviews = orEmpty(a.Reviews)
	a.Certifications = orEmpty(a.Certifications)
	return &a
}

// TotalTransactions is the number of properties sold plus rented.
func (a *Agent) TotalTransactions() int {
	return a.PropertiesSold + a.PropertiesRented
}
