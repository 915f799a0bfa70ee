package request

type Point struct {
	Latitude  *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"lng" binding:"required,min=-180,max=180"`
}

type DistanceRequest struct {
	Origin      Point `json:"origin" binding:"required"`
	Destination Point `json:"destination" binding:"required"`
}
