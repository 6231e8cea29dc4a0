package api

import (
	"net/http"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/profile"
	reqdto "flightdeals/internal/handler/dto/request"
	resdto "flightdeals/internal/handler/dto/response"
	"flightdeals/internal/handler/httperr"
	"flightdeals/internal/handler/middleware"
	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/queries"
	"flightdeals/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	profiles commands.ProfileCommands
	clock    clock.Clock
}

func NewMeHandler(profiles commands.ProfileCommands, clk clock.Clock) *MeHandler {
	return &MeHandler{profiles: profiles, clock: clk}
}

// @Summary Current user
// @Description The caller's profile and effective tier. The profile is created from token claims on first call.
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me [get]
func (h *MeHandler) Get(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithUseCaseError(c, shared.ErrLoginRequired, "Login required")
		return
	}
	p, err := h.profiles.EnsureProfile(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load profile")
		return
	}
	h.respond(c, p)
}

// @Summary Update current user
// @Description Self-service edit of name and phone
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateMeRequest true "Fields to change"
// @Success 200 {object} resdto.MeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/me [patch]
func (h *MeHandler) Update(c *gin.Context) {
	var req reqdto.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.profiles.UpdateMe(c.Request.Context(), middleware.GetViewer(c), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to update profile")
		return
	}
	h.respond(c, p)
}

func (h *MeHandler) respond(c *gin.Context, p *profile.Profile) {
	now := h.clock.Now()
	resp, err := resdto.FromUserView(queries.RenderUser(p, now), access.TierOf(p, now))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render profile", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
