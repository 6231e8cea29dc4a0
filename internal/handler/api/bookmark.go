package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "flightdeals/internal/handler/dto/request"
	resdto "flightdeals/internal/handler/dto/response"
	"flightdeals/internal/handler/httperr"
	"flightdeals/internal/handler/middleware"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	cmds commands.BookmarkCommands
	q    queries.PromotionQueries
}

func NewBookmarkHandler(cmds commands.BookmarkCommands, q queries.PromotionQueries) *BookmarkHandler {
	return &BookmarkHandler{cmds: cmds, q: q}
}

// @Summary Bookmark status
// @Description Whether the caller saved the promotion. 409 while a check or toggle for the same session is in flight.
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param X-Session-ID header string false "Client session (one per tab)"
// @Success 200 {object} resdto.BookmarkStatusResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/promotions/{id}/bookmark [get]
func (h *BookmarkHandler) Check(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	status, err := h.cmds.Check(c.Request.Context(), middleware.GetViewer(c), middleware.GetSession(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to check bookmark")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookmarkStatus(status))
}

// @Summary Toggle bookmark
// @Description Saves an unsaved promotion or removes the bookmark identified by bookmark_id. Never queued: 409 while busy.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param X-Session-ID header string false "Client session (one per tab)"
// @Param request body reqdto.ToggleBookmarkRequest false "Current bookmark id, when saved"
// @Success 200 {object} resdto.BookmarkStatusResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/promotions/{id}/bookmark/toggle [post]
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.ToggleBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	status, err := h.cmds.Toggle(c.Request.Context(), middleware.GetViewer(c), middleware.GetSession(c), id, req.BookmarkID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to toggle bookmark")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookmarkStatus(status))
}

// @Summary Saved promotions
// @Description The caller's bookmarked promotions, redacted per viewer
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param pageSize query int false "Rows per page (1-100)"
// @Param sortField query string false "Sort field: savedAt, createdAt, discount"
// @Param sortDirection query string false "asc or desc"
// @Success 200 {object} queries.Page[queries.SavedPromotionView]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/bookmarks [get]
func (h *BookmarkHandler) ListSaved(c *gin.Context) {
	listAs(c, h.q.ListSaved, "Failed to list saved promotions")
}
