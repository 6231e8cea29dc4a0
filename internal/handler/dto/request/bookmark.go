package request

// ToggleBookmarkRequest carries the bookmark id the client last saw. It is
// required to remove and ignored when adding.
type ToggleBookmarkRequest struct {
	BookmarkID *int64 `json:"bookmark_id" binding:"omitempty,min=1"`
}
