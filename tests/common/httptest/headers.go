//go:build unit || e2e

package httptest

import (
	"maps"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// SessionHeader mirrors the header the bookmark coordinator keys tabs by.
const SessionHeader = "X-Session-ID"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// Bearer returns request headers authenticating with token.
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// InTab adds the browser-tab session id to headers. headers is not modified.
func InTab(headers map[string]string, session string) map[string]string {
	out := maps.Clone(headers)
	if out == nil {
		out = map[string]string{}
	}
	out[SessionHeader] = session
	return out
}
