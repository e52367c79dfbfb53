package response_models

import "beacon/internal/models/db_models"

// UserResponse is the account shape the dashboard consumes. The admin and
// approval flags are normalized to real booleans here, once, so the client
// never has to coerce 0/1 values again.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	IsAdmin    bool   `json:"is_admin"`
	IsApproved bool   `json:"is_approved"`
	CreatedAt  int64  `json:"created_at"`
}

func ToUserResponse(a *db_models.Account) *UserResponse {
	return &UserResponse{
		ID:         a.ID.String(),
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		Role:       string(a.Role),
		IsAdmin:    a.IsAdmin,
		IsApproved: a.IsApproved(),
		CreatedAt:  a.CreatedAt,
	}
}

func ToUserResponses(accounts []*db_models.Account) []*UserResponse {
	out := make([]*UserResponse, len(accounts))
	for i, a := range accounts {
		out[i] = ToUserResponse(a)
	}
	return out
}
