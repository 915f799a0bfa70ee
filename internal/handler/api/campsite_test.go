//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campfinder/internal/domain/user"
	"campfinder/internal/handler/api"
	reqdto "campfinder/internal/handler/dto/request"
	resdto "campfinder/internal/handler/dto/response"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/usecase/commands"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"
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

type CampsiteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCampsiteCommands
	mockQueries  *queriesmock.MockCampsiteQueries
	caller       *identity
}

func (s *CampsiteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCampsiteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCampsiteQueries(s.mockCtrl)
	s.caller = &identity{userID: uuid.New(), role: user.RoleUser}
	handler := api.NewCampsiteHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/campsites", handler.List)
	s.router.GET("/campsites/nearby", handler.Nearby)
	s.router.GET("/campsites/within", handler.Within)
	s.router.GET("/campsites/:id", handler.Get)
	s.router.POST("/campsites", stubAuth(s.caller), handler.Create)
	s.router.PUT("/campsites/:id", stubAuth(s.caller), handler.Update)
	s.router.DELETE("/campsites/:id", stubAuth(s.caller), handler.Delete)
}

func (s *CampsiteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCampsiteHandlerSuite(t *testing.T) {
	suite.Run(t, new(CampsiteHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *CampsiteHandlerTestSuite) TestList() {
	s.Run("success: query string becomes the filter", func() {
		maxCost := 40.0
		want := shared.CampsiteFilter{
			Name:       "pine",
			Facilities: []string{"WiFi", "Showers"},
			MaxCost:    &maxCost,
			Sort:       "-averageRating",
			Page:       2,
			Limit:      5,
		}
		page := &queries.CampsitePage{
			Items: []*queries.CampsiteView{builder.NewCampsiteBuilder().BuildView()},
			Total: 11, Page: 2, Limit: 5,
		}
		s.mockQueries.EXPECT().List(gomock.Any(), want).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/campsites?name=pine&facilities=WiFi,%20Showers&maxCost=40&sort=-averageRating&page=2&limit=5", nil, "")

		var body resdto.CampsiteListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
		s.Require().NotNil(body.Pagination)
		s.Equal(3, *body.Pagination.Next)
		s.Equal(1, *body.Pagination.Prev)
		s.Equal([]float64{-3.1347, 54.6013}, body.Data[0].Location.Coordinates)
	})

	s.Run("error: 400 on non-numeric minRating", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campsites?minRating=high", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid minRating")
	})
}

// ================================================================================
// TestNearbyAndWithin
// ================================================================================

func (s *CampsiteHandlerTestSuite) TestNearbyAndWithin() {
	s.Run("nearby: radius is optional", func() {
		s.mockQueries.EXPECT().Nearby(gomock.Any(), 54.6, -3.1, 0.0, 0).
			Return([]*queries.CampsiteView{builder.NewCampsiteBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campsites/nearby?lat=54.6&lng=-3.1", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("nearby: lat is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campsites/nearby?lng=-3.1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "lat is required")
	})

	s.Run("within: validation error from the query", func() {
		s.mockQueries.EXPECT().Within(gomock.Any(), 54.6, -3.1, 0.0).
			Return(nil, errs.Validation(errs.New("radius must be positive")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campsites/within?lat=54.6&lng=-3.1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "radius must be positive")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CampsiteHandlerTestSuite) TestGet() {
	view := builder.NewCampsiteBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campsites/"+view.ID.String(), nil, "")

		var body resdto.CampsiteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Pine Hollow", body.Name)
		s.Equal("no-photo.jpg", body.Photo)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrCampsiteNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campsites/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "campsite not found")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CampsiteHandlerTestSuite) TestCreate() {
	reqBody := builder.NewCampsiteBuilder().BuildCreateRequestDTO()

	s.Run("success: 201 owned by the caller", func() {
		view := builder.NewCampsiteBuilder().WithOwnerID(s.caller.userID).BuildView()
		s.mockCommands.EXPECT().CreateCampsite(gomock.Any(), s.caller.userID, gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campsites", reqBody, "token")

		var body resdto.CampsiteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.caller.userID, body.OwnerID)
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing latitude", mutate: testutil.Field("latitude", nil)},
			{name: "latitude out of range", mutate: testutil.Field("latitude", 95.0)},
			{name: "no facilities", mutate: testutil.Field("facilities", []string{})},
			{name: "negative cost", mutate: testutil.Field("averageCost", -5.0)},
			{name: "cost above cap", mutate: testutil.Field("averageCost", 9e16)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campsites", body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 on duplicate name", func() {
		s.mockCommands.EXPECT().CreateCampsite(gomock.Any(), s.caller.userID, gomock.Any()).
			Return(nil, commands.ErrCampsiteNameTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campsites", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

// ================================================================================
// TestUpdateAndDelete
// ================================================================================

func (s *CampsiteHandlerTestSuite) TestUpdateAndDelete() {
	id := uuid.New()
	url := "/campsites/" + id.String()

	s.Run("update: partial body forwarded", func() {
		desc := "Now with a sauna."
		s.mockCommands.EXPECT().
			UpdateCampsite(gomock.Any(), id, reqdto.UpdateCampsiteRequest{Description: &desc}, s.caller.userID, "user").
			Return(builder.NewCampsiteBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"description": desc}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("update: 403 for non-owner", func() {
		s.mockCommands.EXPECT().UpdateCampsite(gomock.Any(), id, gomock.Any(), s.caller.userID, "user").
			Return(nil, commands.ErrCampsiteAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not authorized")
	})

	s.Run("delete: 204", func() {
		s.mockCommands.EXPECT().DeleteCampsite(gomock.Any(), id, s.caller.userID, "user").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
