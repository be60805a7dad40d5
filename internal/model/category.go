package model

// Domain is a coarse grouping of categories driving default templates and
// policy branches.
type Domain string

const (
	DomainPeople   Domain = "people"
	DomainSport    Domain = "sport"
	DomainMarket   Domain = "market"
	DomainService  Domain = "service"
	DomainLearning Domain = "learning"
	DomainJob      Domain = "job"
)

// Category is one entry of the static catalog.
type Category struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Summary   string   `json:"summary"`
	Icon      string   `json:"icon"`
	Domain    Domain   `json:"domain"`
	FocusHint string   `json:"focus_hint"`
	Keywords  []string `json:"-"` // router keyword templates, not exposed
}

// Matching modes.
const (
	ModeFind    = "find"
	ModePublish = "publish"
)
