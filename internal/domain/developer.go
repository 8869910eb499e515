package domain

import "math"

// Developer is a property developer. CompletedProjects and UpcomingProjects
// are not required to be subsets of Projects.
type Developer struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Logo        string `json:"logo,omitempty" yaml:"logo"`
	Description string `json:"description,omitempty" yaml:"description"`
	Established int    `json:"established,omitempty" yaml:"established"`
	Website     string `json:"website,omitempty" yaml:"website"`

	Projects          []string `json:"projects" yaml:"projects"`
	CompletedProjects []string `json:"completedProjects" yaml:"completedProjects"`
	UpcomingProjects  []string `json:"upcomingProjects" yaml:"upcomingProjects"`
	TotalUnits        int      `json:"totalUnits" yaml:"totalUnits"`

	Rating  float64  `json:"rating,omitempty" yaml:"rating"`
	Reviews []string `json:"reviews" yaml:"reviews"`
	Awards  []string `json:"awards" yaml:"awards"`

	Specializations  []string `json:"specializations" yaml:"specializations"`
	PopularLocations []string `json:"popularLocations" yaml:"popularLocations"`

	ContactInfo  string `json:"contactInfo,omitempty" yaml:"contactInfo"`
	Headquarters string `json:"headquarters,omitempty" yaml:"headquarters"`
}

// NewDeveloper returns a copy of in with nil sequences replaced by empty ones.
func NewDeveloper(in Developer) *Developer {
	d := in
	d.Projects = orEmpty(d.Projects)
	d.CompletedProjects = orEmpty(d.CompletedProjects)
	d.UpcomingProjects = orEmpty(d.UpcomingProjects)
	d.Reviews = orEmpty(d.Reviews)
	d.Awards = orEmpty(d.Awards)
	d.Specializations = orEmpty(d.Specializations)
	d.PopularLocations = orEmpty(d.PopularLocations)
	return &d
}

// CompletionRate is the rounded percentage of Projects that are completed,
// or 0 when the developer has no projects.
func (d *Developer) CompletionRate() int {
	total := len(d.Projects)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(len(d.CompletedProjects)) / float64(total) * 100))
}
