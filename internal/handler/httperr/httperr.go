package httperr

import (
	"net/http"
	"strconv"

	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// LoginPath is where clients send a viewer whose session is missing.
const LoginPath = "/login"

// RetryAfterSeconds is advertised on 503 responses for transient store failures.
const RetryAfterSeconds = 1

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

// AbortWithUseCaseError maps a marked use-case error onto its status. fallback
// is the message for unclassified failures, which never leak their cause.
func AbortWithUseCaseError(c *gin.Context, err error, fallback string) {
	status, msg, detail := Classify(err, fallback)
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", strconv.Itoa(RetryAfterSeconds))
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error, fallback string) (int, string, any) {
	var verr *queries.ValidationError
	var deps *commands.DependentRowsError

	switch {
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, "Login required", gin.H{"redirect": LoginPath}
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden", nil
	case errs.Is(err, errs.ErrValidation):
		if errs.As(err, &verr) {
			return http.StatusBadRequest, "Invalid request", gin.H{"field": verr.Field, "reason": verr.Reason}
		}
		return http.StatusBadRequest, "Invalid request", gin.H{"reason": validationReason(err)}
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found", nil
	case errs.Is(err, errs.ErrConflict):
		if errs.As(err, &deps) {
			return http.StatusConflict, "Dependent records could not be removed",
				gin.H{"entity": deps.Entity, "id": deps.ID, "dependent_bookmarks": deps.Count}
		}
		return http.StatusConflict, "Conflict", nil
	case errs.Is(err, errs.ErrTransient):
		return http.StatusServiceUnavailable, "Service temporarily unavailable", gin.H{"retryable": true}
	case errs.As(err, &deps):
		return http.StatusInternalServerError, fallback,
			gin.H{"entity": deps.Entity, "id": deps.ID, "dependent_bookmarks": deps.Count}
	}
	return http.StatusInternalServerError, fallback, nil
}

// validationReason is the outermost message of a validation error. Domain
// validation errors are created with user-facing messages.
func validationReason(err error) string {
	return errs.UnwrapAll(err).Error()
}
