package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the client session (one per browser tab) that scopes
// bookmark state machines.
const SessionHeader = "X-Session-ID"

const sessionKey = "session_id"

// GetSession returns the tab's session, or a key unique to this request when
// the client sent none. Header-less requests therefore never share an in-flight
// slot, even from the same user and address.
func GetSession(c *gin.Context) string {
	if s := c.GetHeader(SessionHeader); s != "" {
		return s
	}
	if s := c.GetString(sessionKey); s != "" {
		return s
	}
	s := "req:" + uuid.NewString()
	c.Set(sessionKey, s)
	return s
}
