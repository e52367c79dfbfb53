package db_models

import "github.com/google/uuid"

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// RewardClaim is a redemption request. An admin decision is one-shot:
// once approved or rejected the claim never changes again.
type RewardClaim struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"`
	Points int
	Status ClaimStatus `gorm:"index"`

	User Account `gorm:"foreignKey:UserID"`
}
