package campsite

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Campsite struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	name          Name
	description   Description
	website       string
	phone         string
	email         string
	address       string
	location      Location
	facilities    []Facility
	averageRating *float64
	averageCost   *float64
	photo         string
	createdAt     time.Time
	updatedAt     time.Time
}

// Draft is the flat, mutable shape of a campsite. Creation and partial
// updates both go through it so validation lives in one place.
type Draft struct {
	Name             string
	Description      string
	Website          string
	Phone            string
	Email            string
	Address          string
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
	Facilities       []string
	AverageCost      *float64
	Photo            string
}

func NewCampsite(ownerID uuid.UUID, d Draft, now time.Time) (*Campsite, error) {
	c := &Campsite{
		id:        uuid.New(),
		ownerID:   ownerID,
		createdAt: now,
	}
	if err := c.apply(d, now); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCampsite(
	id, ownerID uuid.UUID,
	name Name,
	description Description,
	website, phone, email, address string,
	location Location,
	facilities []Facility,
	averageRating, averageCost *float64,
	photo string,
	createdAt, updatedAt time.Time,
) *Campsite {
	return &Campsite{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		description:   description,
		website:       website,
		phone:         phone,
		email:         email,
		address:       address,
		location:      location,
		facilities:    facilities,
		averageRating: averageRating,
		averageCost:   averageCost,
		photo:         photo,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (c *Campsite) Draft() Draft {
	facilities := make([]string, len(c.facilities))
	for i, f := range c.facilities {
		facilities[i] = string(f)
	}
	return Draft{
		Name:             c.name.String(),
		Description:      c.description.String(),
		Website:          c.website,
		Phone:            c.phone,
		Email:            c.email,
		Address:          c.address,
		Latitude:         c.location.Point.Latitude(),
		Longitude:        c.location.Point.Longitude(),
		FormattedAddress: c.location.FormattedAddress,
		Street:           c.location.Street,
		City:             c.location.City,
		State:            c.location.State,
		Zipcode:          c.location.Zipcode,
		Country:          c.location.Country,
		Facilities:       facilities,
		AverageCost:      c.averageCost,
		Photo:            c.photo,
	}
}

// Revise replaces the editable fields. Ownership and rating are kept.
func (c *Campsite) Revise(d Draft, now time.Time) error {
	return c.apply(d, now)
}

func (c *Campsite) apply(d Draft, now time.Time) error {
	name, err := NewName(d.Name)
	if err != nil {
		return err
	}
	description, err := NewDescription(d.Description)
	if err != nil {
		return err
	}
	address := strings.TrimSpace(d.Address)
	if address == "" {
		return ErrEmptyAddress
	}
	point, err := NewGeoPoint(d.Latitude, d.Longitude)
	if err != nil {
		return err
	}
	facilities, err := NewFacilities(d.Facilities)
	if err != nil {
		return err
	}
	if err := ValidateAverageCost(d.AverageCost); err != nil {
		return err
	}

	formatted := d.FormattedAddress
	if formatted == "" {
		formatted = address
	}
	photo := d.Photo
	if photo == "" {
		photo = DefaultPhoto
	}

	c.name = name
	c.description = description
	c.website = strings.TrimSpace(d.Website)
	c.phone = strings.TrimSpace(d.Phone)
	c.email = strings.TrimSpace(d.Email)
	c.address = address
	c.location = Location{
		Point:            point,
		FormattedAddress: formatted,
		Street:           d.Street,
		City:             d.City,
		State:            d.State,
		Zipcode:          d.Zipcode,
		Country:          d.Country,
	}
	c.facilities = facilities
	c.averageCost = d.AverageCost
	c.photo = photo
	c.updatedAt = now
	return nil
}

func (c *Campsite) IsOwnedBy(userID uuid.UUID) bool { return c.ownerID == userID }

func (c *Campsite) ID() uuid.UUID            { return c.id }
func (c *Campsite) OwnerID() uuid.UUID       { return c.ownerID }
func (c *Campsite) Name() Name               { return c.name }
func (c *Campsite) Description() Description { return c.description }
func (c *Campsite) Website() string          { return c.website }
func (c *Campsite) Phone() string            { return c.phone }
func (c *Campsite) Email() string            { return c.email }
func (c *Campsite) Address() string          { return c.address }
func (c *Campsite) Location() Location       { return c.location }
func (c *Campsite) Facilities() []Facility   { return c.facilities }
func (c *Campsite) AverageRating() *float64  { return c.averageRating }
func (c *Campsite) AverageCost() *float64    { return c.averageCost }
func (c *Campsite) Photo() string            { return c.photo }
func (c *Campsite) CreatedAt() time.Time     { return c.createdAt }
func (c *Campsite) UpdatedAt() time.Time     { return c.updatedAt }
