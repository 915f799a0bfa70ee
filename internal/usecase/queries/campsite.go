package queries

import (
	"context"
	"sort"
	"time"

	"campfinder/internal/domain/campsite"
	"campfinder/internal/domain/geo"
	"campfinder/internal/infra"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultNearbyRadiusKm = 50
	DefaultNearbyLimit    = 20
)

var ErrCampsiteNotFound = errs.NotFound(errs.New("campsite not found"))

type CampsiteView struct {
	ID            uuid.UUID    `json:"id"`
	OwnerID       uuid.UUID    `json:"owner_id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Website       string       `json:"website,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Email         string       `json:"email,omitempty"`
	Address       string       `json:"address"`
	Location      LocationView `json:"location"`
	Facilities    []string     `json:"facilities"`
	AverageRating *float64     `json:"average_rating,omitempty"`
	AverageCost   *float64     `json:"average_cost,omitempty"`
	Photo         string       `json:"photo"`
	DistanceKm    *float64     `json:"distance_km,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type CampsitePage struct {
	Items []*CampsiteView
	Total int64
	Page  int
	Limit int
}

type CampsiteReader interface {
	CampsiteFinder
	List(ctx context.Context, f shared.CampsiteFilter) ([]*campsite.Campsite, int64, error)
	Nearby(ctx context.Context, at geo.Coordinates, radiusKm float64, limit int) ([]*campsite.Campsite, error)
	Within(ctx context.Context, at geo.Coordinates, radiusKm float64) ([]*campsite.Campsite, error)
}

type CampsiteQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CampsiteView, error)
	List(ctx context.Context, f shared.CampsiteFilter) (*CampsitePage, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*CampsiteView, error)
	Within(ctx context.Context, lat, lng, radiusKm float64) ([]*CampsiteView, error)
}

type campsiteQueriesImpl struct {
	reader CampsiteReader
}

func NewCampsiteQueries(reader CampsiteReader) CampsiteQueries {
	return &campsiteQueriesImpl{reader: reader}
}

func (q *campsiteQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CampsiteView, error) {
	c, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampsiteNotFound
		}
		return nil, err
	}
	return CampsiteViewOf(c), nil
}

func (q *campsiteQueriesImpl) List(ctx context.Context, f shared.CampsiteFilter) (*CampsitePage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	f.Limit = ValidateLimit(f.Limit)

	items, total, err := q.reader.List(ctx, f)
	if err != nil {
		return nil, err
	}

	views := make([]*CampsiteView, len(items))
	for i, c := range items {
		views[i] = CampsiteViewOf(c)
	}
	return &CampsitePage{Items: views, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// Nearby returns campsites ordered nearest first.
func (q *campsiteQueriesImpl) Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*CampsiteView, error) {
	at, err := geo.NewCoordinates(lat, lng)
	if err != nil {
		return nil, errs.Validation(err)
	}
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}
	if limit <= 0 {
		limit = DefaultNearbyLimit
	}

	items, err := q.reader.Nearby(ctx, at, radiusKm, ValidateLimit(limit))
	if err != nil {
		return nil, err
	}
	return withDistances(at, items), nil
}

func (q *campsiteQueriesImpl) Within(ctx context.Context, lat, lng, radiusKm float64) ([]*CampsiteView, error) {
	at, err := geo.NewCoordinates(lat, lng)
	if err != nil {
		return nil, errs.Validation(err)
	}
	if radiusKm <= 0 {
		return nil, errs.Validation(errs.New("radius must be positive"))
	}

	items, err := q.reader.Within(ctx, at, radiusKm)
	if err != nil {
		return nil, err
	}
	views := withDistances(at, items)
	sort.SliceStable(views, func(i, j int) bool { return *views[i].DistanceKm < *views[j].DistanceKm })
	return views, nil
}

func withDistances(at geo.Coordinates, items []*campsite.Campsite) []*CampsiteView {
	views := make([]*CampsiteView, len(items))
	for i, c := range items {
		v := CampsiteViewOf(c)
		p := c.Location().Point
		d := geo.Distance(at, geo.Coordinates{Latitude: p.Latitude(), Longitude: p.Longitude()})
		v.DistanceKm = &d
		views[i] = v
	}
	return views
}

func CampsiteViewOf(c *campsite.Campsite) *CampsiteView {
	facilities := make([]string, len(c.Facilities()))
	for i, f := range c.Facilities() {
		facilities[i] = string(f)
	}

	return &CampsiteView{
		ID:            c.ID(),
		OwnerID:       c.OwnerID(),
		Name:          c.Name().String(),
		Description:   c.Description().String(),
		Website:       c.Website(),
		Phone:         c.Phone(),
		Email:         c.Email(),
		Address:       c.Address(),
		Location:      locationViewOf(c.Location()),
		Facilities:    facilities,
		AverageRating: c.AverageRating(),
		AverageCost:   c.AverageCost(),
		Photo:         c.Photo(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}
