//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	freeUserID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	premiumUserID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	adminUserID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

// fakeAuth stands in for Authenticate + RequireLogin: the bearer token names
// the viewer tier.
func fakeAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	var viewer access.Viewer
	switch token {
	case "free":
		viewer = access.Viewer{UserID: freeUserID, Tier: access.TierFree}
	case "premium":
		viewer = access.Viewer{UserID: premiumUserID, Tier: access.TierPremium}
	case "admin":
		viewer = access.Viewer{UserID: adminUserID, Tier: access.TierAdmin}
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Login required"}})
		return
	}
	middleware.SetViewer(c, viewer)
	c.Next()
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}
