//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/handler/api"
	"flightdeals/internal/handler/middleware"
	"flightdeals/internal/pkg/ptr"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/queries"
	"flightdeals/internal/usecase/shared"
	"flightdeals/tests/common/httptest"
	commandsmock "flightdeals/tests/mock/commands"
	queriesmock "flightdeals/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookmarkHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookmarkCommands
	mockQueries  *queriesmock.MockPromotionQueries
}

func (s *BookmarkHandlerTestSuite) SetupTest() {
	s.router = newRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookmarkCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPromotionQueries(s.mockCtrl)
	h := api.NewBookmarkHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/promotions/:id/bookmark", fakeAuth, h.Check)
	s.router.POST("/api/promotions/:id/bookmark/toggle", fakeAuth, h.Toggle)
	s.router.GET("/api/bookmarks", fakeAuth, h.ListSaved)
}

func (s *BookmarkHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookmarkHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookmarkHandlerTestSuite))
}

var tab = map[string]string{middleware.SessionHeader: "tab-1"}

func (s *BookmarkHandlerTestSuite) TestCheck() {
	freeViewer := access.Viewer{UserID: freeUserID, Tier: access.TierFree}

	s.Run("success: saved bookmark carries its id", func() {
		s.mockCommands.EXPECT().Check(gomock.Any(), freeViewer, "tab-1", int64(42)).
			Return(&commands.BookmarkStatus{PromotionID: 42, State: bookmark.StateSaved, BookmarkID: ptr.Of(int64(7))}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/api/promotions/42/bookmark", nil, tab, "free")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SAVED", body["state"])
		s.Equal(true, body["saved"])
		s.EqualValues(7, body["bookmark_id"])
	})

	s.Run("error: 409 while the card is busy", func() {
		s.mockCommands.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), int64(42)).Return(nil, commands.ErrBookmarkBusy)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/api/promotions/42/bookmark", nil, tab, "free")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflict")
	})
}

func (s *BookmarkHandlerTestSuite) TestToggle() {
	url := "/api/promotions/42/bookmark/toggle"

	s.Run("success: add without a body", func() {
		s.mockCommands.EXPECT().Toggle(gomock.Any(), gomock.Any(), "tab-1", int64(42), (*int64)(nil)).
			Return(&commands.BookmarkStatus{PromotionID: 42, State: bookmark.StateSaved, BookmarkID: ptr.Of(int64(9))}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, tab, "free")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: remove passes the bookmark id", func() {
		s.mockCommands.EXPECT().Toggle(gomock.Any(), gomock.Any(), "tab-1", int64(42), ptr.Of(int64(9))).
			Return(&commands.BookmarkStatus{PromotionID: 42, State: bookmark.StateUnsaved}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, map[string]any{"bookmark_id": 9}, tab, "free")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("UNSAVED", body["state"])
		s.Equal(false, body["saved"])
		s.Nil(body["bookmark_id"])
	})

	s.Run("missing session header falls back to the client address", func() {
		s.mockCommands.EXPECT().Toggle(gomock.Any(), gomock.Any(), gomock.Not("tab-1"), int64(42), gomock.Any()).
			Return(&commands.BookmarkStatus{PromotionID: 42, State: bookmark.StateSaved, BookmarkID: ptr.Of(int64(1))}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "free")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on invalid bookmark id", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, map[string]any{"bookmark_id": 0}, tab, "free")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "busy", err: commands.ErrBookmarkBusy, expectedStatus: http.StatusConflict},
			{name: "bookmark id of another promotion", err: commands.ErrBookmarkMismatch, expectedStatus: http.StatusConflict},
			{name: "anonymous", err: shared.ErrLoginRequired, expectedStatus: http.StatusUnauthorized},
			{name: "promotion gone", err: commands.ErrPromotionNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Toggle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, tab, "free")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *BookmarkHandlerTestSuite) TestListSaved() {
	s.Run("success: defaults leave paging to the engine", func() {
		s.mockQueries.EXPECT().
			ListSaved(gomock.Any(), gomock.Any(), queries.ListRequest{Page: 1, Filters: map[string][]string{}}).
			Return(&queries.Page[queries.SavedPromotionView]{Rows: []queries.SavedPromotionView{}, Page: 1, PageSize: 10}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookmarks", nil, "free")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]any{}, body["rows"])
	})
}
