package httperr

import (
	"net/http"

	"skipass-api/internal/pkg/errs"

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
		panic("AbortWithError: err cannot be nil")
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

// Abort maps a use case error onto its status. Caller mistakes echo the
// error text; server side failures get a fixed message.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, "Authentication required"
	case errs.Is(err, errs.ErrPassNotFound):
		return http.StatusNotFound, "Pass not found"
	case errs.Is(err, errs.ErrResortNotFound):
		return http.StatusNotFound, "Resort not found"
	case errs.Is(err, errs.ErrAlreadyActivated):
		return http.StatusConflict, "Pass already activated"
	case errs.Is(err, errs.ErrPassNotActive):
		return http.StatusConflict, "Pass is not active"
	case errs.Is(err, errs.ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errs.Is(err, errs.ErrCollaboratorUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
