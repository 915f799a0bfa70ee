package api

import (
	"net/http"
	"strconv"
	"strings"

	reqdto "campfinder/internal/handler/dto/request"
	resdto "campfinder/internal/handler/dto/response"
	"campfinder/internal/handler/httperr"
	"campfinder/internal/handler/middleware"
	"campfinder/internal/usecase/commands"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampsiteHandler struct {
	cmds commands.CampsiteCommands
	q    queries.CampsiteQueries
}

func NewCampsiteHandler(cmds commands.CampsiteCommands, q queries.CampsiteQueries) *CampsiteHandler {
	return &CampsiteHandler{cmds: cmds, q: q}
}

// @Summary List campsites
// @Description Filter by name substring, facilities (all of), maximum cost, minimum rating and country
// @Tags campsites
// @Produce json
// @Param name query string false "Name contains (case-insensitive)"
// @Param facilities query string false "Comma separated facilities"
// @Param maxCost query number false "Maximum average cost"
// @Param minRating query number false "Minimum average rating"
// @Param country query string false "Country"
// @Param sort query string false "Sort field, prefix with - for descending"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} resdto.CampsiteListResponse
// @Failure 400 {object} httperr.Response
// @Router /campsites [get]
func (h *CampsiteHandler) List(c *gin.Context) {
	filter := shared.CampsiteFilter{
		Name:    c.Query("name"),
		Country: c.Query("country"),
		Sort:    c.Query("sort"),
	}
	if v := c.Query("facilities"); v != "" {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				filter.Facilities = append(filter.Facilities, f)
			}
		}
	}

	var err error
	if filter.MaxCost, err = queryFloat(c, "maxCost"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid maxCost", nil)
		return
	}
	if filter.MinRating, err = queryFloat(c, "minRating"); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid minRating", nil)
		return
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))

	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "list campsites failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampsitePage(page))
}

// @Summary Get campsite
// @Tags campsites
// @Produce json
// @Param id path string true "Campsite ID"
// @Success 200 {object} resdto.CampsiteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /campsites/{id} [get]
func (h *CampsiteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "get campsite failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampsiteView(view))
}

// @Summary Nearby campsites
// @Description Nearest first within radius km (default 50)
// @Tags campsites
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km"
// @Param limit query int false "Max items"
// @Success 200 {object} resdto.CampsiteListResponse
// @Failure 400 {object} httperr.Response
// @Router /campsites/nearby [get]
func (h *CampsiteHandler) Nearby(c *gin.Context) {
	lat, lng, radius, ok := geoQuery(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	views, err := h.q.Nearby(c.Request.Context(), lat, lng, radius, limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "nearby campsites failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampsiteViews(views))
}

// @Summary Campsites within radius
// @Tags campsites
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number true "Radius in km"
// @Success 200 {object} resdto.CampsiteListResponse
// @Failure 400 {object} httperr.Response
// @Router /campsites/within [get]
func (h *CampsiteHandler) Within(c *gin.Context) {
	lat, lng, radius, ok := geoQuery(c)
	if !ok {
		return
	}

	views, err := h.q.Within(c.Request.Context(), lat, lng, radius)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "campsites within radius failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampsiteViews(views))
}

// @Summary Create campsite
// @Tags campsites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCampsiteRequest true "Campsite"
// @Success 201 {object} resdto.CampsiteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /campsites [post]
func (h *CampsiteHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateCampsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateCampsite(c.Request.Context(), ownerID, req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "create campsite failed")
		return
	}
	c.Header("Location", "/api/v1/campsites/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCampsiteView(view))
}

// @Summary Update campsite
// @Description Owner or admin only; absent fields are left unchanged
// @Tags campsites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campsite ID"
// @Param request body reqdto.UpdateCampsiteRequest true "Changes"
// @Success 200 {object} resdto.CampsiteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /campsites/{id} [put]
func (h *CampsiteHandler) Update(c *gin.Context) {
	id, actorID, role, ok := campsiteActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCampsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateCampsite(c.Request.Context(), id, req, actorID, role)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "update campsite failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampsiteView(view))
}

// @Summary Delete campsite
// @Description Owner or admin only
// @Tags campsites
// @Security BearerAuth
// @Param id path string true "Campsite ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /campsites/{id} [delete]
func (h *CampsiteHandler) Delete(c *gin.Context) {
	id, actorID, role, ok := campsiteActor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteCampsite(c.Request.Context(), id, actorID, role); err != nil {
		httperr.AbortWithUseCaseError(c, err, "delete campsite failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func campsiteActor(c *gin.Context) (uuid.UUID, uuid.UUID, string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, "", false
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return id, actorID, string(role), true
}

// geoQuery reads lat and lng (required) and radius (optional, 0 when absent).
func geoQuery(c *gin.Context) (lat, lng, radius float64, ok bool) {
	latPtr, err := queryFloat(c, "lat")
	if err != nil || latPtr == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "lat is required and must be a number", nil)
		return 0, 0, 0, false
	}
	lngPtr, err := queryFloat(c, "lng")
	if err != nil || lngPtr == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "lng is required and must be a number", nil)
		return 0, 0, 0, false
	}
	radiusPtr, err := queryFloat(c, "radius")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "radius must be a number", nil)
		return 0, 0, 0, false
	}
	if radiusPtr != nil {
		radius = *radiusPtr
	}
	return *latPtr, *lngPtr, radius, true
}

func queryFloat(c *gin.Context, key string) (*float64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
