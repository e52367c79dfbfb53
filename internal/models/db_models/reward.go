package db_models

import "github.com/google/uuid"

// Reward is an append-only ledger entry. A user's balance is the sum of
// their entries minus the points of their approved claims.
type Reward struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"`
	Points int
	Reason string

	User Account `gorm:"foreignKey:UserID"`
}
