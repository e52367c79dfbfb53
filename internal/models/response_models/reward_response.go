package response_models

import "beacon/internal/models/db_models"

type RewardResponse struct {
	ID        string `json:"id"`
	Points    int    `json:"points"`
	Reason    string `json:"reason"`
	CreatedAt int64  `json:"created_at"`
}

func ToRewardResponses(rewards []*db_models.Reward) []*RewardResponse {
	out := make([]*RewardResponse, len(rewards))
	for i, r := range rewards {
		out[i] = &RewardResponse{
			ID:        r.ID.String(),
			Points:    r.Points,
			Reason:    r.Reason,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}

type ClaimResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	Points    int    `json:"points"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func ToClaimResponse(c *db_models.RewardClaim) *ClaimResponse {
	return &ClaimResponse{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		UserName:  c.User.Name,
		Points:    c.Points,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToClaimResponses(claims []*db_models.RewardClaim) []*ClaimResponse {
	out := make([]*ClaimResponse, len(claims))
	for i, c := range claims {
		out[i] = ToClaimResponse(c)
	}
	return out
}

// LeaderboardEntry mirrors the {id, name, rewards_sum_points} rows the
// admin dashboard renders.
type LeaderboardEntry struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	RewardsSumPoints int    `json:"rewards_sum_points"`
}
