package api

import (
	"errors"
	"net/http"

	reqdto "campfinder/internal/handler/dto/request"
	resdto "campfinder/internal/handler/dto/response"
	"campfinder/internal/handler/httperr"
	"campfinder/internal/handler/middleware"
	"campfinder/internal/pkg/config"
	"campfinder/internal/pkg/cookie"
	"campfinder/internal/pkg/jwt"
	"campfinder/internal/usecase/commands"
	"campfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userCommands commands.UserCommands,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userCommands: userCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Register
// @Description Create a user account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "register failed")
		return
	}

	h.respondWithTokens(c, http.StatusCreated, result.UserID, result.TokenPair)
}

// @Summary Login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithUseCaseError(c, err, "login failed")
		return
	}

	h.respondWithTokens(c, http.StatusOK, result.UserID, result.TokenPair)
}

// @Summary Refresh tokens
// @Description Exchange a refresh token (body or cookie) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	token := req.RefreshToken
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Refresh token required", nil)
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, commands.ErrTokenValidation) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
			return
		}
		httperr.AbortWithUseCaseError(c, err, "refresh failed")
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.AuthResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// @Summary Logout
// @Description Clear the auth cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookies is all the server can do
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "get current user failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update current user
// @Description Update name or email; the role cannot be changed here
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/me [put]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.userCommands.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		httperr.AbortWithUseCaseError(c, err, "update profile failed")
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "get current user failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

func (h *AuthHandler) respondWithTokens(c *gin.Context, status int, userID uuid.UUID, pair *commands.TokenPair) {
	h.setCookies(c, pair)

	resp := resdto.AuthResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
	// the tokens are already valid; a failed profile read only trims the body
	if view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID); err == nil {
		resp.User = resdto.FromUserView(view)
	}
	c.JSON(status, resp)
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
}
