package campsite

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength        = 50
	MaxDescriptionLength = 500
	DefaultPhoto         = "no-photo.jpg"
)

// MaxAverageCost caps the nightly cost so stay prices fit in int64 cents.
const MaxAverageCost = 100000

var (
	ErrEmptyName          = errors.New("please add a name")
	ErrNameTooLong        = errors.New("name can not be more than 50 characters")
	ErrEmptyDescription   = errors.New("please add a description")
	ErrDescriptionTooLong = errors.New("description can not be more than 500 characters")
	ErrEmptyAddress       = errors.New("please add an address")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrNoFacilities       = errors.New("please add at least one facility")
	ErrUnknownFacility    = errors.New("unknown facility")
	ErrInvalidRating      = errors.New("average rating must be between 1 and 5")
	ErrNegativeCost       = errors.New("average cost cannot be negative")
	ErrCostTooLarge       = errors.New("average cost can not be more than 100000")
)

type Name struct{ value string }

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Description struct{ value string }

func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Description{}, ErrEmptyDescription
	}
	if utf8.RuneCountInString(s) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: s}, nil
}

func (d Description) String() string { return d.value }

// GeoPoint is stored as GeoJSON, so longitude comes first.
type GeoPoint struct {
	longitude float64
	latitude  float64
}

func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return GeoPoint{}, ErrInvalidCoordinates
	}
	return GeoPoint{longitude: longitude, latitude: latitude}, nil
}

func (p GeoPoint) Latitude() float64  { return p.latitude }
func (p GeoPoint) Longitude() float64 { return p.longitude }

type Location struct {
	Point            GeoPoint
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

type Facility string

const (
	FacilityElectricHookups Facility = "Electric Hookups"
	FacilityWaterHookups    Facility = "Water Hookups"
	FacilitySewerHookups    Facility = "Sewer Hookups"
	FacilityWiFi            Facility = "WiFi"
	FacilityLaundry         Facility = "Laundry"
	FacilityRestrooms       Facility = "Restrooms"
	FacilityShowers         Facility = "Showers"
	FacilityPool            Facility = "Pool"
	FacilityFishing         Facility = "Fishing"
	FacilityHiking          Facility = "Hiking"
	FacilityPlayground      Facility = "Playground"
)

var knownFacilities = map[Facility]struct{}{
	FacilityElectricHookups: {},
	FacilityWaterHookups:    {},
	FacilitySewerHookups:    {},
	FacilityWiFi:            {},
	FacilityLaundry:         {},
	FacilityRestrooms:       {},
	FacilityShowers:         {},
	FacilityPool:            {},
	FacilityFishing:         {},
	FacilityHiking:          {},
	FacilityPlayground:      {},
}

func (f Facility) IsValid() bool {
	_, ok := knownFacilities[f]
	return ok
}

// NewFacilities validates and de-duplicates, keeping input order.
func NewFacilities(values []string) ([]Facility, error) {
	if len(values) == 0 {
		return nil, ErrNoFacilities
	}
	seen := make(map[Facility]struct{}, len(values))
	out := make([]Facility, 0, len(values))
	for _, v := range values {
		f := Facility(v)
		if !f.IsValid() {
			return nil, ErrUnknownFacility
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out, nil
}

func ValidateAverageRating(r *float64) error {
	if r != nil && (*r < 1 || *r > 5) {
		return ErrInvalidRating
	}
	return nil
}

func ValidateAverageCost(c *float64) error {
	if c == nil {
		return nil
	}
	if *c < 0 || math.IsNaN(*c) {
		return ErrNegativeCost
	}
	if *c > MaxAverageCost {
		return ErrCostTooLarge
	}
	return nil
}
