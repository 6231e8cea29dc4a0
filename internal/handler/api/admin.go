package api

import (
	"net/http"
	"strconv"

	"flightdeals/internal/domain/access"
	reqdto "flightdeals/internal/handler/dto/request"
	resdto "flightdeals/internal/handler/dto/response"
	"flightdeals/internal/handler/httperr"
	"flightdeals/internal/handler/middleware"
	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds  commands.AdminCommands
	q     queries.AdminQueries
	clock clock.Clock
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.AdminQueries, clk clock.Clock) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param pageSize query int false "Rows per page (1-100)"
// @Param sortField query string false "name, email, createdAt, updatedAt"
// @Param sortDirection query string false "asc or desc"
// @Param isPremium query string false "all, premium or free (expiry aware)"
// @Success 200 {object} queries.Page[queries.UserView]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	listAs(c, h.q.ListUsers, "Failed to list users")
}

// @Summary List promotions (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param pageSize query int false "Rows per page (1-100)"
// @Success 200 {object} queries.Page[queries.PromotionView]
// @Failure 403 {object} httperr.Response
// @Router /api/admin/promotions [get]
func (h *AdminHandler) ListPromotions(c *gin.Context) {
	listAs(c, h.q.ListPromotions, "Failed to list promotions")
}

// @Summary List orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param pageSize query int false "Rows per page (1-100)"
// @Param status query string false "Comma separated statuses"
// @Param amountFrom query string false "Lower amount bound"
// @Param amountTo query string false "Upper amount bound"
// @Success 200 {object} queries.Page[queries.OrderView]
// @Failure 403 {object} httperr.Response
// @Router /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	listAs(c, h.q.ListOrders, "Failed to list orders")
}

// @Summary Create promotion
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} queries.PromotionView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/promotions [post]
func (h *AdminHandler) CreatePromotion(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	viewer := middleware.GetViewer(c)
	p, err := h.cmds.CreatePromotion(c.Request.Context(), viewer, req.ToParams(viewer.UserID))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to create promotion")
		return
	}
	c.Header("Location", "/api/promotions/"+strconv.FormatInt(p.ID(), 10))
	c.JSON(http.StatusCreated, queries.RenderPromotion(p, access.Full))
}

// @Summary Update promotion
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param request body reqdto.UpdatePromotionRequest true "Fields to change"
// @Success 200 {object} queries.PromotionView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/promotions/{id} [patch]
func (h *AdminHandler) UpdatePromotion(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.cmds.UpdatePromotion(c.Request.Context(), middleware.GetViewer(c), id, patch)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to update promotion")
		return
	}
	c.JSON(http.StatusOK, queries.RenderPromotion(p, access.Full))
}

// @Summary Delete promotion
// @Description Removes dependent bookmarks first, then the promotion, in one transaction
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 200 {object} resdto.DeleteResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/promotions/{id} [delete]
func (h *AdminHandler) DeletePromotion(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.DeletePromotion(c.Request.Context(), middleware.GetViewer(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to delete promotion")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeleteResult(res))
}

// @Summary Delete user
// @Description Removes the user's bookmarks, then the profile. Orders are retained.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.DeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.DeleteUser(c.Request.Context(), middleware.GetViewer(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeleteResult(res))
}

// @Summary Grant admin
// @Description Idempotent: granting to an existing admin succeeds with already_admin=true
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.GrantAdminResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id}/admin [post]
func (h *AdminHandler) GrantAdmin(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	res, err := h.cmds.GrantAdmin(c.Request.Context(), middleware.GetViewer(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to grant admin")
		return
	}
	c.JSON(http.StatusOK, resdto.GrantAdminResponse{
		User:         queries.RenderUser(res.Profile, h.clock.Now()),
		AlreadyAdmin: res.AlreadyAdmin,
	})
}

// @Summary Update subscription
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateSubscriptionRequest true "Premium flag and optional expiry"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id}/subscription [patch]
func (h *AdminHandler) UpdateSubscription(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.cmds.UpdateSubscription(c.Request.Context(), middleware.GetViewer(c), id, *req.IsPremium, req.ExpiresAt)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to update subscription")
		return
	}
	c.JSON(http.StatusOK, queries.RenderUser(p, h.clock.Now()))
}

// @Summary Update order status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.UpdateOrderStatus(c.Request.Context(), middleware.GetViewer(c), id, req.Status)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, queries.RenderOrder(o, nil))
}
