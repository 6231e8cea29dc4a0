package api

import (
	"net/http"

	"flightdeals/internal/handler/httperr"
	"flightdeals/internal/handler/middleware"
	"flightdeals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	q queries.PromotionQueries
}

func NewPromotionHandler(q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{q: q}
}

// @Summary List promotions
// @Description Paginated promotion catalog. Premium promotions stay in the list and are redacted for non-premium viewers.
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Rows per page (1-100, default 10)"
// @Param sortField query string false "Sort field: createdAt, updatedAt, discount, price, miles, from, to, airline"
// @Param sortDirection query string false "asc or desc (default desc)"
// @Param isPremium query string false "all, premium or free"
// @Success 200 {object} queries.Page[queries.PromotionView]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	listAs(c, h.q.List, "Failed to list promotions")
}

// @Summary Get promotion
// @Description Promotion detail, redacted for non-premium viewers of premium content
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 200 {object} queries.PromotionView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), middleware.GetViewer(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load promotion")
		return
	}
	c.JSON(http.StatusOK, view)
}
