//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"campfinder/internal/domain/user"
	"campfinder/internal/handler/middleware"
	"campfinder/internal/pkg/cookie"
	"campfinder/internal/pkg/jwt"
	"campfinder/internal/usecase"
	"campfinder/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("middleware-secret", time.Minute, time.Hour)
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": string(role)})
	}
	r.GET("/me", mw.RequireAuth(), whoami)
	r.GET("/admin", mw.RequireAuth(), mw.RequireRole(user.RoleAdmin), whoami)
	return r, svc
}

func TestRequireAuth(t *testing.T) {
	r, svc := authRouter(t)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, user.RoleUser)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID, user.RoleUser)
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, access)

		var body struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body.ID)
		assert.Equal(t, "user", body.Role)
	})

	t.Run("cookie", func(t *testing.T) {
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: access}}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("refresh token is not accepted", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, refresh)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("someone-else", time.Minute, time.Hour)
		forged, err := other.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, forged)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRole(t *testing.T) {
	r, svc := authRouter(t)

	userToken, err := svc.GenerateAccessToken(uuid.New(), user.RoleUser)
	require.NoError(t, err)
	adminToken, err := svc.GenerateAccessToken(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, userToken)
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
