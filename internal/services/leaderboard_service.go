package services

import (
	"context"

	"beacon/internal/models/db_models"
	"beacon/internal/models/response_models"
	"beacon/internal/repositories"
	"beacon/pkg/utils"
)

type LeaderboardServiceInterface interface {
	// TopUsers ranks users by summed reward points, descending, ties
	// broken by ascending account id. limit <= 0 returns everyone.
	TopUsers(ctx context.Context, actor *db_models.Account, limit int) ([]*response_models.LeaderboardEntry, error)
}

type LeaderboardService struct {
	rewardRepo repositories.RewardRepository
}

func NewLeaderboardService(rewardRepo repositories.RewardRepository) LeaderboardServiceInterface {
	return &LeaderboardService{rewardRepo: rewardRepo}
}

func (s *LeaderboardService) TopUsers(ctx context.Context, actor *db_models.Account, limit int) ([]*response_models.LeaderboardEntry, error) {
	if !actor.IsAdmin {
		return nil, utils.ErrForbidden
	}

	rows, err := s.rewardRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]*response_models.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = &response_models.LeaderboardEntry{
			ID:               row.ID.String(),
			Name:             row.Name,
			RewardsSumPoints: row.TotalPoints,
		}
	}
	return entries, nil
}
