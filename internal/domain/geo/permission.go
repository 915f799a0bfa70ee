package geo

import "strings"

const (
	SiteSearchRadiusKm    = 10.0
	SiteMatchRadiusKm     = 1.0
	CountrySearchRadiusKm = 200.0

	PermitTypeCountry = "Country Regulation"
	PermitTypeUnknown = "Unknown Area"
	UnknownCountry    = "Unknown"
	unknownAreaText   = "Could not determine regulations for this location."
)

type Status string

const (
	StatusPermitted  Status = "permitted"
	StatusTolerated  Status = "tolerated"
	StatusProhibited Status = "prohibited"
	StatusUnknown    Status = "unknown"
)

// IsPermitted is nil when the answer is neither yes nor no.
func (s Status) IsPermitted() *bool {
	var v bool
	switch s {
	case StatusPermitted:
		v = true
	case StatusProhibited:
		v = false
	default:
		return nil
	}
	return &v
}

type KnownSite struct {
	Name        string
	Country     string
	Description string
	PermitType  string
	Status      Status
	Point       Coordinates
}

// RuleBook holds per-country regulation text plus a fallback.
type RuleBook struct {
	Countries map[string]string
	Default   string
}

func (r RuleBook) Describe(country string) string {
	if text, ok := r.Countries[country]; ok {
		return text
	}
	return r.Default
}

type Assessment struct {
	Status      Status
	PermitType  string
	SiteName    string
	Description string
	Country     string
	// DistanceKm is set only when a known site matched.
	DistanceKm *float64
}

type Evaluator struct {
	sites []KnownSite
	rules RuleBook
}

func NewEvaluator(sites []KnownSite, rules RuleBook) *Evaluator {
	return &Evaluator{sites: sites, rules: rules}
}

func (e *Evaluator) Evaluate(at Coordinates) Assessment {
	if site, d, ok := e.nearest(at, SiteSearchRadiusKm); ok && d < SiteMatchRadiusKm {
		return Assessment{
			Status:      site.Status,
			PermitType:  site.PermitType,
			SiteName:    site.Name,
			Description: site.Description,
			Country:     site.Country,
			DistanceKm:  &d,
		}
	}

	site, _, ok := e.nearest(at, CountrySearchRadiusKm)
	if !ok {
		return Assessment{
			Status:      StatusUnknown,
			PermitType:  PermitTypeUnknown,
			Description: unknownAreaText,
			Country:     UnknownCountry,
		}
	}

	return Assessment{
		Status:      CountryStatus(site.Country),
		PermitType:  PermitTypeCountry,
		Description: e.rules.Describe(site.Country),
		Country:     site.Country,
	}
}

func (e *Evaluator) nearest(at Coordinates, maxKm float64) (KnownSite, float64, bool) {
	var (
		best  KnownSite
		bestD = maxKm
		found bool
	)
	for _, s := range e.sites {
		if d := Distance(at, s.Point); d <= bestD {
			best, bestD, found = s, d, true
		}
	}
	return best, bestD, found
}

// CountryStatus applies the right-to-roam shortlist.
func CountryStatus(country string) Status {
	switch strings.ToLower(country) {
	case "sweden", "norway", "scotland":
		return StatusPermitted
	case "france":
		return StatusTolerated
	default:
		return StatusProhibited
	}
}
