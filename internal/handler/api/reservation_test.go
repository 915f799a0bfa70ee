//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"campfinder/internal/domain/user"
	"campfinder/internal/handler/api"
	reqdto "campfinder/internal/handler/dto/request"
	resdto "campfinder/internal/handler/dto/response"
	"campfinder/internal/usecase/commands"
	"campfinder/internal/usecase/queries"
	"campfinder/tests/common/builder"
	"campfinder/tests/common/httptest"
	"campfinder/tests/common/testutil"
	commandsmock "campfinder/tests/mock/commands"
	queriesmock "campfinder/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	caller       *identity
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.caller = &identity{userID: uuid.New(), role: user.RoleUser}
	handler := api.NewReservationHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/reservations", stubAuth(s.caller))
	group.GET("/my-reservations", handler.GetUserReservations)
	group.POST("/:id", handler.CreateReservation)
	group.GET("/:id", handler.GetReservation)
	group.PUT("/:id/cancel", handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	campsiteID := uuid.New()
	url := "/reservations/" + campsiteID.String()
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

	s.Run("success: 201 with priced pending reservation", func() {
		view := builder.NewReservationBuilder().WithCampsiteID(campsiteID).WithUserID(s.caller.userID).BuildView()
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), campsiteID, s.caller.userID, reqBody).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(120.0, body.TotalPrice)
		s.Equal("pending", body.Status)
		s.Equal("Pine Hollow", body.Campsite.Name)
		s.Equal(int64(4), body.Nights)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/v1/reservations/" + view.ID.String()})
	})

	s.Run("success: calendar dates are read as UTC midnight", func() {
		want := reqdto.CreateReservationRequest{
			StartDate:      reqdto.NewDate(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)),
			EndDate:        reqdto.NewDate(time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)),
			NumberOfPeople: 2,
		}
		view := builder.NewReservationBuilder().WithCampsiteID(campsiteID).WithUserID(s.caller.userID).BuildView()
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), campsiteID, s.caller.userID, want).
			Return(view, nil)

		body := map[string]any{"startDate": "2025-05-01", "endDate": "2025-05-05", "numberOfPeople": 2}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("success: timestamps keep their offset", func() {
		view := builder.NewReservationBuilder().WithCampsiteID(campsiteID).WithUserID(s.caller.userID).BuildView()
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), campsiteID, s.caller.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
				s.True(req.StartDate.Time().Equal(time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)))
				s.True(req.EndDate.Time().Equal(time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)))
				return view, nil
			})

		body := map[string]any{"startDate": "2025-05-01T14:00:00+02:00", "endDate": "2025-05-05", "numberOfPeople": 2}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing startDate", mutate: testutil.Field("startDate", nil)},
			{name: "missing endDate", mutate: testutil.Field("endDate", nil)},
			{name: "zero people", mutate: testutil.Field("numberOfPeople", 0)},
			{name: "malformed date", mutate: testutil.Field("startDate", "01/05/2025")},
			{name: "impossible calendar date", mutate: testutil.Field("startDate", "2025-02-30")},
			{name: "date as number", mutate: testutil.Field("startDate", 20250501)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 on malformed campsite id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid campsite id")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps use case errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "campsite missing", err: commands.ErrCampsiteNotFound, status: http.StatusNotFound, msg: "campsite not found"},
			{name: "dates taken", err: commands.ErrCampsiteUnavailable, status: http.StatusConflict, msg: "not available for the selected dates"},
			{name: "unexpected", err: errors.New("pool closed"), status: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), campsiteID, s.caller.userID, reqBody).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

// ================================================================================
// TestGetUserReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	url := "/reservations/my-reservations"

	s.Run("success: lists the caller's reservations", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().WithUserID(s.caller.userID).BuildView(),
			builder.NewReservationBuilder().WithUserID(s.caller.userID).
				WithPeriod(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)).
				BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.caller.userID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Count)
		s.Equal("Pine Hollow", body.Data[0].Campsite.Name)
		s.Equal(int64(2), body.Data[1].Nights)
	})

	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.caller.userID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(0, body.Count)
		s.NotNil(body.Data)
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: passes the caller's role", func() {
		s.caller.role = user.RoleAdmin
		defer func() { s.caller.role = user.RoleUser }()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.caller.userID, "admin").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 403 for someone else's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.caller.userID, "user").
			Return(nil, queries.ErrReservationAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not authorized to view this reservation")
	})

	s.Run("error: 404 for unknown reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: 400 for invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/xyz", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success: returns the cancelled reservation", func() {
		view := builder.NewReservationBuilder().WithID(id).BuildView()
		view.Status = "cancelled"
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id, s.caller.userID, "user").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: maps use case errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "already cancelled", err: commands.ErrAlreadyCancelled, status: http.StatusConflict, msg: "reservation is already cancelled"},
			{name: "not the owner", err: commands.ErrReservationAccess, status: http.StatusForbidden, msg: "not authorized to view this reservation"},
			{name: "unknown", err: commands.ErrReservationNotFound, status: http.StatusNotFound, msg: "reservation not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id, s.caller.userID, "user").Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}
