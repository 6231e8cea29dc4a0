package request

import "flightdeals/internal/usecase/commands"

// UpdateMeRequest is the self-service edit. An empty phone clears it.
type UpdateMeRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

func (r *UpdateMeRequest) ToCommand() commands.UpdateMeRequest {
	return commands.UpdateMeRequest{Name: r.Name, Phone: r.Phone}
}
