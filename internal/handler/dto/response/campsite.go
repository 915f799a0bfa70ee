package response

import (
	"time"

	"campfinder/internal/usecase/queries"

	"github.com/google/uuid"
)

type CampsiteResponse struct {
	ID            uuid.UUID         `json:"id"`
	OwnerID       uuid.UUID         `json:"ownerId"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Website       string            `json:"website,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	Address       string            `json:"address"`
	Location      *LocationResponse `json:"location"`
	Facilities    []string          `json:"facilities"`
	AverageRating *float64          `json:"averageRating,omitempty"`
	AverageCost   *float64          `json:"averageCost,omitempty"`
	Photo         string            `json:"photo"`
	DistanceKm    *float64          `json:"distanceKm,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func FromCampsiteView(v *queries.CampsiteView) *CampsiteResponse {
	return &CampsiteResponse{
		ID:            v.ID,
		OwnerID:       v.OwnerID,
		Name:          v.Name,
		Description:   v.Description,
		Website:       v.Website,
		Phone:         v.Phone,
		Email:         v.Email,
		Address:       v.Address,
		Location:      FromLocationView(&v.Location),
		Facilities:    v.Facilities,
		AverageRating: v.AverageRating,
		AverageCost:   v.AverageCost,
		Photo:         v.Photo,
		DistanceKm:    v.DistanceKm,
		CreatedAt:     v.CreatedAt,
	}
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Next  *int  `json:"next,omitempty"`
	Prev  *int  `json:"prev,omitempty"`
}

type CampsiteListResponse struct {
	Count      int                 `json:"count"`
	Pagination *Pagination         `json:"pagination,omitempty"`
	Data       []*CampsiteResponse `json:"data"`
}

func FromCampsiteViews(views []*queries.CampsiteView) *CampsiteListResponse {
	data := make([]*CampsiteResponse, len(views))
	for i, v := range views {
		data[i] = FromCampsiteView(v)
	}
	return &CampsiteListResponse{Count: len(data), Data: data}
}

func FromCampsitePage(page *queries.CampsitePage) *CampsiteListResponse {
	resp := FromCampsiteViews(page.Items)
	p := &Pagination{Page: page.Page, Limit: page.Limit, Total: page.Total}
	if int64(page.Page*page.Limit) < page.Total {
		next := page.Page + 1
		p.Next = &next
	}
	if page.Page > 1 {
		prev := page.Page - 1
		p.Prev = &prev
	}
	resp.Pagination = p
	return resp
}
