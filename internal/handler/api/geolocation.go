package api

import (
	"net/http"

	"campfinder/internal/domain/geo"
	reqdto "campfinder/internal/handler/dto/request"
	resdto "campfinder/internal/handler/dto/response"
	"campfinder/internal/handler/httperr"
	"campfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GeolocationHandler struct {
	q queries.GeolocationQueries
}

func NewGeolocationHandler(q queries.GeolocationQueries) *GeolocationHandler {
	return &GeolocationHandler{q: q}
}

// @Summary Distance between two points
// @Description Great-circle distance in kilometres
// @Tags geolocation
// @Accept json
// @Produce json
// @Param request body reqdto.DistanceRequest true "Origin and destination"
// @Success 200 {object} resdto.DistanceResponse
// @Failure 400 {object} httperr.Response
// @Router /geolocation/distance [post]
func (h *GeolocationHandler) Distance(c *gin.Context) {
	var req reqdto.DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please provide origin and destination coordinates", nil)
		return
	}

	d, err := h.q.Distance(
		geo.Coordinates{Latitude: *req.Origin.Latitude, Longitude: *req.Origin.Longitude},
		geo.Coordinates{Latitude: *req.Destination.Latitude, Longitude: *req.Destination.Longitude},
	)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "distance failed")
		return
	}
	c.JSON(http.StatusOK, resdto.DistanceResponse{DistanceKm: d, Unit: "km"})
}

// @Summary Camping permission
// @Description Whether wild camping is permitted at a location
// @Tags geolocation
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} resdto.PermissionResponse
// @Failure 400 {object} httperr.Response
// @Router /geolocation/permission [get]
func (h *GeolocationHandler) Permission(c *gin.Context) {
	lat, lng, _, ok := geoQuery(c)
	if !ok {
		return
	}

	view, err := h.q.Permission(lat, lng)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "camping permission failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPermissionView(view))
}
