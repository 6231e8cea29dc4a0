package api

import (
	"context"
	"net/http"
	"strconv"

	"flightdeals/internal/domain/access"
	reqdto "flightdeals/internal/handler/dto/request"
	"flightdeals/internal/handler/httperr"
	"flightdeals/internal/handler/middleware"
	"flightdeals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// listAs runs a paginated list for the request viewer.
func listAs[T any](c *gin.Context, list func(context.Context, access.Viewer, queries.ListRequest) (*queries.Page[T], error), fallback string) {
	req, err := reqdto.ParseList(c.Request.URL.Query())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid request")
		return
	}
	page, err := list(c.Request.Context(), middleware.GetViewer(c), req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, fallback)
		return
	}
	c.JSON(http.StatusOK, page)
}
