package reward_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"beacon/internal/events"
	"beacon/internal/repositories"
	"beacon/internal/services"
)

var Module = fx.Provide(
	provideRewardRepo, provideRewardService, provideLeaderboardService)

func provideRewardRepo(db *gorm.DB) repositories.RewardRepository {
	return repositories.NewRewardRepository(db)
}

func provideRewardService(
	rewardRepo repositories.RewardRepository,
	publisher events.Publisher,
	logger *logrus.Logger,
) services.RewardServiceInterface {
	return services.NewRewardService(rewardRepo, publisher, logger)
}

func provideLeaderboardService(rewardRepo repositories.RewardRepository) services.LeaderboardServiceInterface {
	return services.NewLeaderboardService(rewardRepo)
}
