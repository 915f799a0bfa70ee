//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campfinder/internal/domain/geo"
	"campfinder/internal/handler/api"
	resdto "campfinder/internal/handler/dto/response"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/usecase/queries"
	"campfinder/tests/common/httptest"
	queriesmock "campfinder/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GeolocationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockGeolocationQueries
}

func (s *GeolocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockGeolocationQueries(s.mockCtrl)

	handler := api.NewGeolocationHandler(s.mockQueries)
	s.router.POST("/geolocation/distance", handler.Distance)
	s.router.GET("/geolocation/permission", handler.Permission)
}

func (s *GeolocationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGeolocationHandlerSuite(t *testing.T) {
	suite.Run(t, new(GeolocationHandlerTestSuite))
}

// ================================================================================
// TestDistance
// ================================================================================

func (s *GeolocationHandlerTestSuite) TestDistance() {
	s.Run("success: kilometres between the two points", func() {
		london := geo.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
		paris := geo.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
		s.mockQueries.EXPECT().Distance(london, paris).Return(343.56, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/geolocation/distance", map[string]any{
			"origin":      map[string]any{"lat": 51.5074, "lng": -0.1278},
			"destination": map[string]any{"lat": 48.8566, "lng": 2.3522},
		}, "")

		var body resdto.DistanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.InDelta(343.56, body.DistanceKm, 1e-9)
		s.Equal("km", body.Unit)
	})

	s.Run("success: zero coordinates are valid", func() {
		zero := geo.Coordinates{}
		s.mockQueries.EXPECT().Distance(zero, zero).Return(0.0, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/geolocation/distance", map[string]any{
			"origin":      map[string]any{"lat": 0, "lng": 0},
			"destination": map[string]any{"lat": 0, "lng": 0},
		}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on missing or out of range points", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "no destination", body: map[string]any{"origin": map[string]any{"lat": 1, "lng": 1}}},
			{name: "missing lng", body: map[string]any{
				"origin":      map[string]any{"lat": 1},
				"destination": map[string]any{"lat": 1, "lng": 1},
			}},
			{name: "latitude above 90", body: map[string]any{
				"origin":      map[string]any{"lat": 91, "lng": 1},
				"destination": map[string]any{"lat": 1, "lng": 1},
			}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/geolocation/distance", tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Please provide origin and destination coordinates")
			})
		}
	})
}

// ================================================================================
// TestPermission
// ================================================================================

func (s *GeolocationHandlerTestSuite) TestPermission() {
	s.Run("success: permitted area", func() {
		permitted := true
		s.mockQueries.EXPECT().Permission(56.1, -4.6).Return(&queries.PermissionView{
			IsPermitted: &permitted,
			Status:      "permitted",
			PermitType:  "access-rights",
			Country:     "Scotland",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/geolocation/permission?lat=56.1&lng=-4.6", nil, "")

		var body resdto.PermissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.IsPermitted)
		s.True(*body.IsPermitted)
		s.Equal("Scotland", body.Country)
		s.Nil(body.DistanceKm)
	})

	s.Run("error: 400 without lng", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/geolocation/permission?lat=56.1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "lng is required and must be a number")
	})

	s.Run("error: validation from the evaluator", func() {
		s.mockQueries.EXPECT().Permission(100.0, 0.0).Return(nil, errs.Validation(errs.New("latitude out of range")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/geolocation/permission?lat=100&lng=0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "latitude out of range")
	})
}
