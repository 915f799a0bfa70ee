package api

import (
	"net/http"

	reqdto "campfinder/internal/handler/dto/request"
	resdto "campfinder/internal/handler/dto/response"
	"campfinder/internal/handler/httperr"
	"campfinder/internal/handler/middleware"
	"campfinder/internal/usecase/commands"
	"campfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a campsite for a date range. The reservation starts pending.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campsiteId path string true "Campsite ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{campsiteId} [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	campsiteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campsite id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateReservation(c.Request.Context(), campsiteID, userID, req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "create reservation failed")
		return
	}

	c.Header("Location", "/api/v1/reservations/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary My reservations
// @Description List the caller's reservations with campsite name and location
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations/my-reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "list reservations failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Description Owner or admin only
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, actorID, role, ok := reservationActor(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actorID, role)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "get reservation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Owner or admin only. Cancelled dates become bookable again.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [put]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, actorID, role, ok := reservationActor(c)
	if !ok {
		return
	}

	view, err := h.cmds.CancelReservation(c.Request.Context(), id, actorID, role)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "cancel reservation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func reservationActor(c *gin.Context) (uuid.UUID, uuid.UUID, string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
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
