package directory

import (
	"time"

	"campfinder/internal/domain/campsite"

	"github.com/google/uuid"
)

type geoJSONPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"` // [lng, lat]
}

type addressDocument struct {
	Formatted string `bson:"formatted"`
	Street    string `bson:"street,omitempty"`
	City      string `bson:"city,omitempty"`
	State     string `bson:"state,omitempty"`
	Zipcode   string `bson:"zipcode,omitempty"`
	Country   string `bson:"country,omitempty"`
}

type campsiteDocument struct {
	ID            string          `bson:"_id"`
	OwnerID       string          `bson:"owner_id"`
	Name          string          `bson:"name"`
	Description   string          `bson:"description"`
	Website       string          `bson:"website,omitempty"`
	Phone         string          `bson:"phone,omitempty"`
	Email         string          `bson:"email,omitempty"`
	Address       string          `bson:"address"`
	Location      geoJSONPoint    `bson:"location"`
	Place         addressDocument `bson:"place"`
	Facilities    []string        `bson:"facilities"`
	AverageRating *float64        `bson:"average_rating,omitempty"`
	AverageCost   *float64        `bson:"average_cost,omitempty"`
	Photo         string          `bson:"photo"`
	CreatedAt     time.Time       `bson:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at"`
}

func toDocument(c *campsite.Campsite) campsiteDocument {
	loc := c.Location()
	facilities := make([]string, len(c.Facilities()))
	for i, f := range c.Facilities() {
		facilities[i] = string(f)
	}

	return campsiteDocument{
		ID:          c.ID().String(),
		OwnerID:     c.OwnerID().String(),
		Name:        c.Name().String(),
		Description: c.Description().String(),
		Website:     c.Website(),
		Phone:       c.Phone(),
		Email:       c.Email(),
		Address:     c.Address(),
		Location: geoJSONPoint{
			Type:        "Point",
			Coordinates: []float64{loc.Point.Longitude(), loc.Point.Latitude()},
		},
		Place: addressDocument{
			Formatted: loc.FormattedAddress,
			Street:    loc.Street,
			City:      loc.City,
			State:     loc.State,
			Zipcode:   loc.Zipcode,
			Country:   loc.Country,
		},
		Facilities:    facilities,
		AverageRating: c.AverageRating(),
		AverageCost:   c.AverageCost(),
		Photo:         c.Photo(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func (d campsiteDocument) toDomain() (*campsite.Campsite, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return nil, err
	}
	name, err := campsite.NewName(d.Name)
	if err != nil {
		return nil, err
	}
	description, err := campsite.NewDescription(d.Description)
	if err != nil {
		return nil, err
	}

	var lng, lat float64
	if len(d.Location.Coordinates) == 2 {
		lng, lat = d.Location.Coordinates[0], d.Location.Coordinates[1]
	}
	point, err := campsite.NewGeoPoint(lat, lng)
	if err != nil {
		return nil, err
	}

	facilities := make([]campsite.Facility, len(d.Facilities))
	for i, f := range d.Facilities {
		facilities[i] = campsite.Facility(f)
	}

	return campsite.ReconstructCampsite(
		id, ownerID,
		name, description,
		d.Website, d.Phone, d.Email, d.Address,
		campsite.Location{
			Point:            point,
			FormattedAddress: d.Place.Formatted,
			Street:           d.Place.Street,
			City:             d.Place.City,
			State:            d.Place.State,
			Zipcode:          d.Place.Zipcode,
			Country:          d.Place.Country,
		},
		facilities,
		d.AverageRating, d.AverageCost,
		d.Photo,
		d.CreatedAt, d.UpdatedAt,
	), nil
}
