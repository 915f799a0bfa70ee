package response

import "campfinder/internal/usecase/queries"

type DistanceResponse struct {
	DistanceKm float64 `json:"distanceKm"`
	Unit       string  `json:"unit"`
}

type PermissionResponse struct {
	IsPermitted *bool    `json:"isPermitted"`
	Status      string   `json:"status"`
	PermitType  string   `json:"permitType"`
	SiteName    string   `json:"siteName,omitempty"`
	Description string   `json:"description"`
	Country     string   `json:"country"`
	DistanceKm  *float64 `json:"distanceKm,omitempty"`
}

func FromPermissionView(v *queries.PermissionView) *PermissionResponse {
	return &PermissionResponse{
		IsPermitted: v.IsPermitted,
		Status:      v.Status,
		PermitType:  v.PermitType,
		SiteName:    v.SiteName,
		Description: v.Description,
		Country:     v.Country,
		DistanceKm:  v.DistanceKm,
	}
}
