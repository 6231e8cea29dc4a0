package response

import (
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/queries"
)

type DeleteResponse struct {
	RemovedBookmarks int64 `json:"removed_bookmarks"`
	RetainedOrders   int64 `json:"retained_orders"`
}

func FromDeleteResult(r *commands.DeleteResult) DeleteResponse {
	return DeleteResponse{RemovedBookmarks: r.RemovedBookmarks, RetainedOrders: r.RetainedOrders}
}

type GrantAdminResponse struct {
	User         queries.UserView `json:"user"`
	AlreadyAdmin bool             `json:"already_admin"`
}
