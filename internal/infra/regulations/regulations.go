package regulations

import (
	_ "embed"
	"fmt"

	"campfinder/internal/domain/geo"

	"gopkg.in/yaml.v3"
)

//go:embed regulations.yaml
var defaultData []byte

type siteRecord struct {
	Name        string     `yaml:"name"`
	Country     string     `yaml:"country"`
	Coordinates [2]float64 `yaml:"coordinates"`
	Status      string     `yaml:"status"`
	PermitType  string     `yaml:"permit_type"`
	Description string     `yaml:"description"`
}

type document struct {
	Countries map[string]string `yaml:"countries"`
	Default   string            `yaml:"default"`
	Sites     []siteRecord      `yaml:"sites"`
}

// Load builds an evaluator from the embedded regulation table.
func Load() (*geo.Evaluator, error) {
	return Parse(defaultData)
}

func Parse(data []byte) (*geo.Evaluator, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse regulations: %w", err)
	}

	sites := make([]geo.KnownSite, 0, len(doc.Sites))
	for _, rec := range doc.Sites {
		point, err := geo.NewCoordinates(rec.Coordinates[0], rec.Coordinates[1])
		if err != nil {
			return nil, fmt.Errorf("site %q: %w", rec.Name, err)
		}
		status, err := parseStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("site %q: %w", rec.Name, err)
		}
		sites = append(sites, geo.KnownSite{
			Name:        rec.Name,
			Country:     rec.Country,
			Description: rec.Description,
			PermitType:  rec.PermitType,
			Status:      status,
			Point:       point,
		})
	}

	return geo.NewEvaluator(sites, geo.RuleBook{Countries: doc.Countries, Default: doc.Default}), nil
}

func parseStatus(s string) (geo.Status, error) {
	switch st := geo.Status(s); st {
	case geo.StatusPermitted, geo.StatusTolerated, geo.StatusProhibited, geo.StatusUnknown:
		return st, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}
