//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody is the envelope every non-2xx response carries.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse checks the status and that the message contains
// expectedErrorMsg (skipped when empty). The decoded body is returned for
// detail assertions.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var body ErrorBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
	return body
}

// AssertLoginRedirect checks the 401 sent to anonymous or expired sessions.
func AssertLoginRedirect(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	body := AssertErrorResponse(t, w, http.StatusUnauthorized, "Login required")
	assert.Equal(t, "/login", body.Detail["redirect"])
}

// AssertRetryable checks the 503 sent for transient store failures.
func AssertRetryable(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	body := AssertErrorResponse(t, w, http.StatusServiceUnavailable, "temporarily unavailable")
	assert.Equal(t, true, body.Detail["retryable"])
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}
