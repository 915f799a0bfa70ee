package request

import (
	"campfinder/internal/domain/campsite"

	"github.com/jinzhu/copier"
)

type CreateCampsiteRequest struct {
	Name             string   `json:"name" binding:"required,max=50"`
	Description      string   `json:"description" binding:"required,max=500"`
	Website          string   `json:"website" binding:"omitempty,url"`
	Phone            string   `json:"phone" binding:"omitempty,max=20"`
	Email            string   `json:"email" binding:"omitempty,email"`
	Address          string   `json:"address" binding:"required"`
	Latitude         *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	FormattedAddress string   `json:"formattedAddress"`
	Street           string   `json:"street"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Zipcode          string   `json:"zipcode"`
	Country          string   `json:"country"`
	Facilities       []string `json:"facilities" binding:"required,min=1"`
	AverageCost      *float64 `json:"averageCost" binding:"omitempty,min=0,max=100000"`
	Photo            string   `json:"photo"`
}

func (r *CreateCampsiteRequest) ToDraft() campsite.Draft {
	var d campsite.Draft
	_ = copier.Copy(&d, r)
	if r.Latitude != nil {
		d.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		d.Longitude = *r.Longitude
	}
	if d.FormattedAddress == "" {
		d.FormattedAddress = r.Address
	}
	return d
}

// UpdateCampsiteRequest is a partial update. Absent fields keep their value.
type UpdateCampsiteRequest struct {
	Name             *string   `json:"name" binding:"omitempty,max=50"`
	Description      *string   `json:"description" binding:"omitempty,max=500"`
	Website          *string   `json:"website" binding:"omitempty,url"`
	Phone            *string   `json:"phone" binding:"omitempty,max=20"`
	Email            *string   `json:"email" binding:"omitempty,email"`
	Address          *string   `json:"address"`
	Latitude         *float64  `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude        *float64  `json:"longitude" binding:"omitempty,min=-180,max=180"`
	FormattedAddress *string   `json:"formattedAddress"`
	Street           *string   `json:"street"`
	City             *string   `json:"city"`
	State            *string   `json:"state"`
	Zipcode          *string   `json:"zipcode"`
	Country          *string   `json:"country"`
	Facilities       *[]string `json:"facilities" binding:"omitempty,min=1"`
	AverageCost      *float64  `json:"averageCost" binding:"omitempty,min=0,max=100000"`
	Photo            *string   `json:"photo"`
}
