package response

import (
	"time"

	"campfinder/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationResponse struct {
	Type             string    `json:"type"`
	Coordinates      []float64 `json:"coordinates"`
	FormattedAddress string    `json:"formattedAddress"`
	Street           string    `json:"street,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	Zipcode          string    `json:"zipcode,omitempty"`
	Country          string    `json:"country,omitempty"`
}

// FromLocationView renders a GeoJSON point, longitude first.
func FromLocationView(v *queries.LocationView) *LocationResponse {
	if v == nil {
		return nil
	}
	return &LocationResponse{
		Type:             "Point",
		Coordinates:      []float64{v.Longitude, v.Latitude},
		FormattedAddress: v.FormattedAddress,
		Street:           v.Street,
		City:             v.City,
		State:            v.State,
		Zipcode:          v.Zipcode,
		Country:          v.Country,
	}
}

type ReservationCampsite struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name,omitempty"`
	Location *LocationResponse `json:"location,omitempty"`
}

type ReservationResponse struct {
	ID             uuid.UUID           `json:"id"`
	Campsite       ReservationCampsite `json:"campsite"`
	UserID         uuid.UUID           `json:"userId"`
	StartDate      time.Time           `json:"startDate"`
	EndDate        time.Time           `json:"endDate"`
	Nights         int64               `json:"nights"`
	NumberOfPeople int                 `json:"numberOfPeople"`
	TotalPrice     float64             `json:"totalPrice"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID: v.ID,
		Campsite: ReservationCampsite{
			ID:       v.CampsiteID,
			Name:     v.CampsiteName,
			Location: FromLocationView(v.CampsiteLocation),
		},
		UserID:         v.UserID,
		StartDate:      v.StartDate,
		EndDate:        v.EndDate,
		Nights:         v.Nights,
		NumberOfPeople: v.NumberOfPeople,
		TotalPrice:     v.TotalPrice,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
	}
}

type ReservationListResponse struct {
	Count int                    `json:"count"`
	Data  []*ReservationResponse `json:"data"`
}

func FromReservationViews(views []*queries.ReservationView) *ReservationListResponse {
	data := make([]*ReservationResponse, len(views))
	for i, v := range views {
		data[i] = FromReservationView(v)
	}
	return &ReservationListResponse{Count: len(data), Data: data}
}
