package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beacon/internal/models/db_models"
	"beacon/pkg/utils"
)

// LeaderboardRow is a derived aggregation row, never stored.
type LeaderboardRow struct {
	ID          uuid.UUID `gorm:"column:id"`
	Name        string    `gorm:"column:name"`
	TotalPoints int       `gorm:"column:total_points"`
}

type RewardRepository interface {
	Insert(ctx context.Context, reward *db_models.Reward) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*db_models.Reward, error)
	// AvailableBalance is accrued points minus approved claim points.
	// Pending claims do not reserve points.
	AvailableBalance(ctx context.Context, userID uuid.UUID) (int, error)
	InsertClaim(ctx context.Context, claim *db_models.RewardClaim) error
	FindClaimByID(ctx context.Context, id uuid.UUID) (*db_models.RewardClaim, error)
	ListClaims(ctx context.Context) ([]*db_models.RewardClaim, error)
	// ProcessClaim settles a pending claim. Returns zero rows when the
	// claim was already decided (or does not exist). An approval that
	// would overdraw the user's balance rolls back with
	// utils.ErrInsufficientBalance.
	ProcessClaim(ctx context.Context, claimID uuid.UUID, decision db_models.ClaimStatus) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]*LeaderboardRow, error)
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) Insert(ctx context.Context, reward *db_models.Reward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *rewardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*db_models.Reward, error) {
	var rewards []*db_models.Reward
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

func availableBalance(tx *gorm.DB, userID uuid.UUID) (int, error) {
	var accrued int
	err := tx.Model(&db_models.Reward{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&accrued).Error
	if err != nil {
		return 0, err
	}

	var approved int
	err = tx.Model(&db_models.RewardClaim{}).
		Where("user_id = ? AND status = ?", userID, db_models.ClaimStatusApproved).
		Select("COALESCE(SUM(points), 0)").
		Scan(&approved).Error
	if err != nil {
		return 0, err
	}

	return accrued - approved, nil
}

func (r *rewardRepository) AvailableBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	return availableBalance(r.db.WithContext(ctx), userID)
}

func (r *rewardRepository) InsertClaim(ctx context.Context, claim *db_models.RewardClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *rewardRepository) FindClaimByID(ctx context.Context, id uuid.UUID) (*db_models.RewardClaim, error) {
	var claim db_models.RewardClaim
	err := r.db.WithContext(ctx).Preload("User").First(&claim, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *rewardRepository) ListClaims(ctx context.Context) ([]*db_models.RewardClaim, error) {
	var claims []*db_models.RewardClaim
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *rewardRepository) ProcessClaim(ctx context.Context, claimID uuid.UUID, decision db_models.ClaimStatus) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&db_models.RewardClaim{}).
			Where("id = ? AND status = ?", claimID, db_models.ClaimStatusPending).
			Updates(map[string]interface{}{
				"status":     decision,
				"updated_at": time.Now().Unix(),
			})
		if result.Error != nil {
			return result.Error
		}
		rows = result.RowsAffected
		if rows == 0 || decision != db_models.ClaimStatusApproved {
			return nil
		}

		// Re-check the balance with this approval included so racing
		// approvals can never push approved claims past accrued points.
		var claim db_models.RewardClaim
		if err := tx.First(&claim, "id = ?", claimID).Error; err != nil {
			return err
		}
		balance, err := availableBalance(tx, claim.UserID)
		if err != nil {
			return err
		}
		if balance < 0 {
			return utils.ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rows, nil
}

func (r *rewardRepository) Leaderboard(ctx context.Context, limit int) ([]*LeaderboardRow, error) {
	var rows []*LeaderboardRow
	q := r.db.WithContext(ctx).
		Table("rewards").
		Select("accounts.id AS id, accounts.name AS name, COALESCE(SUM(rewards.points), 0) AS total_points").
		Joins("JOIN accounts ON accounts.id = rewards.user_id").
		Group("accounts.id, accounts.name").
		Order("total_points DESC, accounts.id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
