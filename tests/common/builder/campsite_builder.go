//go:build unit || e2e

package builder

import (
	"time"

	"campfinder/internal/domain/campsite"
	reqdto "campfinder/internal/handler/dto/request"
	"campfinder/internal/usecase/queries"

	"github.com/google/uuid"
)

type CampsiteBuilder struct {
	OwnerID       uuid.UUID
	Draft         campsite.Draft
	AverageRating *float64
	CreatedAt     time.Time
}

func NewCampsiteBuilder() *CampsiteBuilder {
	return &CampsiteBuilder{
		OwnerID: uuid.New(),
		Draft: campsite.Draft{
			Name:        "Pine Hollow",
			Description: "Shaded pitches under old pines, two minutes from the lake.",
			Website:     "https://pinehollow.example.com",
			Phone:       "+44 1234 567890",
			Email:       "hello@pinehollow.example.com",
			Address:     "1 Lakeside Road, Keswick, CA12 5DJ, UK",
			Latitude:    54.6013,
			Longitude:   -3.1347,
			City:        "Keswick",
			Country:     "UK",
			Facilities:  []string{"Showers", "Restrooms", "Hiking"},
		},
		CreatedAt: time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CampsiteBuilder) With(mutate func(*CampsiteBuilder)) *CampsiteBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CampsiteBuilder) BuildDomain() (*campsite.Campsite, error) {
	c, err := campsite.NewCampsite(b.OwnerID, b.Draft, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if b.AverageRating == nil {
		return c, nil
	}
	return b.withRating(c), nil
}

// BuildReconstructed panics on an invalid draft; use BuildDomain for validation cases.
func (b *CampsiteBuilder) BuildReconstructed() *campsite.Campsite {
	c, err := campsite.NewCampsite(b.OwnerID, b.Draft, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return b.withRating(c)
}

func (b *CampsiteBuilder) BuildView() *queries.CampsiteView {
	return queries.CampsiteViewOf(b.BuildReconstructed())
}

func (b *CampsiteBuilder) BuildCreateRequestDTO() reqdto.CreateCampsiteRequest {
	d := b.Draft
	return reqdto.CreateCampsiteRequest{
		Name:        d.Name,
		Description: d.Description,
		Website:     d.Website,
		Phone:       d.Phone,
		Email:       d.Email,
		Address:     d.Address,
		Latitude:    &d.Latitude,
		Longitude:   &d.Longitude,
		Facilities:  d.Facilities,
		AverageCost: d.AverageCost,
	}
}

func (b *CampsiteBuilder) withRating(c *campsite.Campsite) *campsite.Campsite {
	return campsite.ReconstructCampsite(
		c.ID(), c.OwnerID(),
		c.Name(), c.Description(),
		c.Website(), c.Phone(), c.Email(), c.Address(),
		c.Location(),
		c.Facilities(),
		b.AverageRating, c.AverageCost(),
		c.Photo(),
		c.CreatedAt(), c.UpdatedAt(),
	)
}

// Fluent builder methods
func (b *CampsiteBuilder) WithOwnerID(ownerID uuid.UUID) *CampsiteBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *CampsiteBuilder) WithName(name string) *CampsiteBuilder {
	b.Draft.Name = name
	return b
}

func (b *CampsiteBuilder) WithPoint(lat, lng float64) *CampsiteBuilder {
	b.Draft.Latitude = lat
	b.Draft.Longitude = lng
	return b
}

func (b *CampsiteBuilder) WithAverageCost(cost float64) *CampsiteBuilder {
	b.Draft.AverageCost = &cost
	return b
}

func (b *CampsiteBuilder) WithAverageRating(rating float64) *CampsiteBuilder {
	b.AverageRating = &rating
	return b
}
