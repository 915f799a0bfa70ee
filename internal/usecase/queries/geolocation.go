package queries

import (
	"campfinder/internal/domain/geo"
	"campfinder/internal/pkg/errs"
)

type PermissionView struct {
	// IsPermitted is null for tolerated or unknown areas.
	IsPermitted *bool    `json:"is_permitted"`
	Status      string   `json:"status"`
	PermitType  string   `json:"permit_type"`
	SiteName    string   `json:"site_name,omitempty"`
	Description string   `json:"description"`
	Country     string   `json:"country"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
}

type GeolocationQueries interface {
	Distance(origin, destination geo.Coordinates) (float64, error)
	Permission(lat, lng float64) (*PermissionView, error)
}

type geolocationQueriesImpl struct {
	evaluator *geo.Evaluator
}

func NewGeolocationQueries(evaluator *geo.Evaluator) GeolocationQueries {
	return &geolocationQueriesImpl{evaluator: evaluator}
}

func (q *geolocationQueriesImpl) Distance(origin, destination geo.Coordinates) (float64, error) {
	from, err := geo.NewCoordinates(origin.Latitude, origin.Longitude)
	if err != nil {
		return 0, errs.Validation(err)
	}
	to, err := geo.NewCoordinates(destination.Latitude, destination.Longitude)
	if err != nil {
		return 0, errs.Validation(err)
	}
	return geo.Distance(from, to), nil
}

func (q *geolocationQueriesImpl) Permission(lat, lng float64) (*PermissionView, error) {
	at, err := geo.NewCoordinates(lat, lng)
	if err != nil {
		return nil, errs.Validation(err)
	}

	a := q.evaluator.Evaluate(at)
	return &PermissionView{
		IsPermitted: a.Status.IsPermitted(),
		Status:      string(a.Status),
		PermitType:  a.PermitType,
		SiteName:    a.SiteName,
		Description: a.Description,
		Country:     a.Country,
		DistanceKm:  a.DistanceKm,
	}, nil
}
