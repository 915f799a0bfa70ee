package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"campfinder/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error kind to its HTTP status; 0 means the error carries no kind.
func StatusOf(err error) int {
	switch errs.Kind(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrValidation:
		return http.StatusBadRequest
	default:
		return 0
	}
}

// AbortWithUseCaseError answers with the kind's status and the error's own
// message. Errors without a kind become a 500 carrying fallback.
func AbortWithUseCaseError(c *gin.Context, err error, fallback string) {
	if status := StatusOf(err); status != 0 {
		AbortWithError(c, status, err, err.Error(), nil)
		return
	}

	slog.Error(fallback, "error", err, "path", c.FullPath(), "stack", errs.ExtractStackLines(err, 5))
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
