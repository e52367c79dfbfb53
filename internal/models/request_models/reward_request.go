package request_models

type ClaimRewardRequest struct {
	Points int `json:"points" binding:"required"`
}

type ProcessClaimRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
