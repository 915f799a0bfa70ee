//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"campfinder/internal/handler/httperr"
	"campfinder/internal/handler/middleware"
	"campfinder/internal/pkg/errs"
	"campfinder/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandling(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/silent", func(c *gin.Context) { _ = c.Error(errors.New("lost")) })
	r.GET("/usecase/:kind", func(c *gin.Context) {
		var err error
		switch c.Param("kind") {
		case "missing":
			err = errs.NotFound(errs.New("campsite not found"))
		case "taken":
			err = errs.Conflict(errs.New("campsite is not available for the selected dates"))
		case "denied":
			err = errs.Forbidden(errs.New("not authorized to view this reservation"))
		case "invalid":
			err = errs.Validation(errs.New("end date must be after start date"))
		default:
			err = errs.Wrap(errors.New("pool closed"), "find campsite")
		}
		httperr.AbortWithUseCaseError(c, err, "lookup failed")
	})

	t.Run("panic becomes a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("unrendered error becomes a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	cases := []struct {
		kind   string
		status int
		msg    string
	}{
		{kind: "missing", status: http.StatusNotFound, msg: "campsite not found"},
		{kind: "taken", status: http.StatusConflict, msg: "campsite is not available for the selected dates"},
		{kind: "denied", status: http.StatusForbidden, msg: "not authorized to view this reservation"},
		{kind: "invalid", status: http.StatusBadRequest, msg: "end date must be after start date"},
		{kind: "other", status: http.StatusInternalServerError, msg: "Internal server error"},
	}
	for _, tc := range cases {
		t.Run("kind "+tc.kind, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/usecase/"+tc.kind, nil, "")
			httptest.AssertErrorResponse(t, rec, tc.status, tc.msg)
		})
	}

	assert.Zero(t, httperr.StatusOf(nil))
}
