package response

import "flightdeals/internal/usecase/commands"

type BookmarkStatusResponse struct {
	PromotionID int64  `json:"promotion_id"`
	State       string `json:"state"`
	Saved       bool   `json:"saved"`
	BookmarkID  *int64 `json:"bookmark_id"`
}

func FromBookmarkStatus(s *commands.BookmarkStatus) BookmarkStatusResponse {
	return BookmarkStatusResponse{
		PromotionID: s.PromotionID,
		State:       s.State.String(),
		Saved:       s.BookmarkID != nil,
		BookmarkID:  s.BookmarkID,
	}
}
