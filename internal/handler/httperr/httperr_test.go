//go:build unit

package httperr_test

import (
	"context"
	"net/http"
	"testing"

	"flightdeals/internal/handler/httperr"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	deps := &commands.DependentRowsError{Entity: "user", ID: "u-1", Count: 4}

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantDetail any
	}{
		{
			name:       "unauthenticated carries the login redirect",
			err:        errs.Unauthenticated(errs.New("login required")),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Login required",
			wantDetail: gin.H{"redirect": "/login"},
		},
		{
			name:       "forbidden",
			err:        errs.Wrap(commands.ErrNotAdmin, "grant admin"),
			wantStatus: http.StatusForbidden,
			wantMsg:    "Forbidden",
		},
		{
			name:       "validation names the field",
			err:        errs.Validation(&queries.ValidationError{Field: "pageSize", Reason: "must be between 1 and 100"}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request",
			wantDetail: gin.H{"field": "pageSize", "reason": "must be between 1 and 100"},
		},
		{
			name:       "plain validation reports its message",
			err:        errs.NewValidation("discount must be between 0 and 100"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request",
			wantDetail: gin.H{"reason": "discount must be between 0 and 100"},
		},
		{
			name:       "not found",
			err:        commands.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not found",
		},
		{
			name:       "busy conflict",
			err:        commands.ErrBookmarkBusy,
			wantStatus: http.StatusConflict,
			wantMsg:    "Conflict",
		},
		{
			name:       "dependent rows conflict",
			err:        errs.Conflict(deps),
			wantStatus: http.StatusConflict,
			wantMsg:    "Dependent records could not be removed",
			wantDetail: gin.H{"entity": "user", "id": "u-1", "dependent_bookmarks": int64(4)},
		},
		{
			name:       "transient is retryable",
			err:        errs.Transient(context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Service temporarily unavailable",
			wantDetail: gin.H{"retryable": true},
		},
		{
			name:       "unmarked dependent rows still report the count",
			err:        deps,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed",
			wantDetail: gin.H{"entity": "user", "id": "u-1", "dependent_bookmarks": int64(4)},
		},
		{
			name:       "unclassified hides the cause",
			err:        errs.New("pq: something broke"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, detail := httperr.Classify(tc.err, "Failed")
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
			if tc.wantDetail == nil {
				assert.Nil(t, detail)
				return
			}
			assert.Equal(t, tc.wantDetail, detail)
		})
	}
}
