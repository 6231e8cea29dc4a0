package middleware

import (
	"log/slog"
	"strings"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/handler/httperr"
	"flightdeals/internal/pkg/cookie"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	profiles       commands.ProfileCommands
}

const (
	ctxIdentityKey = "identity"
	ctxViewerKey   = "viewer"
)

var errInvalidToken = errs.Unauthenticated(errs.New("invalid or expired token"))

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, profiles commands.ProfileCommands) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		profiles:       profiles,
	}
}

// Authenticate resolves the viewer for every request. A request without a
// token continues as anonymous; a token that fails validation is rejected.
// Authenticated callers get their profile row created on first sight.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var identity *shared.Identity

		if token := extractToken(c); token != "" {
			id, err := m.tokenValidator.ValidateToken(token)
			if err != nil {
				slog.Warn("Token validation failed in auth middleware", "error", err.Error())
				httperr.AbortWithUseCaseError(c, errInvalidToken, "Invalid or expired token")
				return
			}
			identity = id
			SetIdentity(c, *id)
		}

		viewer, err := m.profiles.ResolveViewer(c.Request.Context(), identity)
		if err != nil {
			httperr.AbortWithUseCaseError(c, err, "Failed to resolve viewer")
			return
		}

		c.Set(ctxViewerKey, viewer)
		c.Next()
	}
}

// RequireLogin rejects anonymous viewers with a redirect hint to the login page.
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetViewer(c).Authenticated() {
			httperr.AbortWithUseCaseError(c, shared.ErrLoginRequired, "Login required")
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetViewer returns the anonymous viewer when Authenticate did not run.
func GetViewer(c *gin.Context) access.Viewer {
	if v, exists := c.Get(ctxViewerKey); exists {
		if viewer, ok := v.(access.Viewer); ok {
			return viewer
		}
	}
	return access.Anonymous()
}

// SetViewer is used by tests and internal tooling to inject a resolved viewer.
func SetViewer(c *gin.Context, viewer access.Viewer) {
	c.Set(ctxViewerKey, viewer)
}

func SetIdentity(c *gin.Context, identity shared.Identity) {
	c.Set(ctxIdentityKey, identity)
}

func GetIdentity(c *gin.Context) (shared.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return shared.Identity{}, false
	}
	id, ok := v.(shared.Identity)
	return id, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	viewer := GetViewer(c)
	if !viewer.Authenticated() {
		return uuid.Nil, false
	}
	return viewer.UserID, true
}
