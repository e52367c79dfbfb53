package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"beacon/internal/events"
	"beacon/internal/models/db_models"
	"beacon/internal/models/response_models"
	"beacon/internal/repositories"
	"beacon/pkg/utils"
)

type RewardServiceInterface interface {
	ListRewards(ctx context.Context, userID uuid.UUID) ([]*db_models.Reward, error)
	RequestClaim(ctx context.Context, user *db_models.Account, points int) (*db_models.RewardClaim, error)
	ProcessClaim(ctx context.Context, actor *db_models.Account, claimID uuid.UUID, decision string) (*db_models.RewardClaim, error)
	ListClaims(ctx context.Context, actor *db_models.Account) ([]*db_models.RewardClaim, error)
}

type RewardService struct {
	rewardRepo repositories.RewardRepository
	publisher  events.Publisher
	logger     *logrus.Logger
}

func NewRewardService(
	rewardRepo repositories.RewardRepository,
	publisher events.Publisher,
	logger *logrus.Logger,
) RewardServiceInterface {
	return &RewardService{
		rewardRepo: rewardRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *RewardService) ListRewards(ctx context.Context, userID uuid.UUID) ([]*db_models.Reward, error) {
	rewards, err := s.rewardRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rewards, nil
}

func (s *RewardService) RequestClaim(ctx context.Context, user *db_models.Account, points int) (*db_models.RewardClaim, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "reward",
		"method":  "RequestClaim",
		"user_id": user.ID,
		"points":  points,
	})

	if points <= 0 {
		return nil, utils.NewValidationError("points", "points must be a positive integer")
	}

	balance, err := s.rewardRepo.AvailableBalance(ctx, user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to compute available balance")
		return nil, utils.ErrDatabaseError
	}
	if points > balance {
		return nil, utils.ErrInsufficientBalance
	}

	claim := &db_models.RewardClaim{
		UserID: user.ID,
		Points: points,
		Status: db_models.ClaimStatusPending,
	}
	if err := s.rewardRepo.InsertClaim(ctx, claim); err != nil {
		log.WithError(err).Error("Failed to insert claim")
		return nil, utils.ErrDatabaseError
	}
	claim.User = *user

	s.publisher.Publish(events.Event{Name: events.ClaimRequested, Data: response_models.ToClaimResponse(claim)})
	log.WithField("claim_id", claim.ID).Info("Reward claim requested")
	return claim, nil
}

func (s *RewardService) ProcessClaim(ctx context.Context, actor *db_models.Account, claimID uuid.UUID, decision string) (*db_models.RewardClaim, error) {
	if !actor.IsAdmin {
		return nil, utils.ErrForbidden
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "reward",
		"method":   "ProcessClaim",
		"claim_id": claimID,
		"decision": decision,
	})

	status := db_models.ClaimStatus(decision)
	if status != db_models.ClaimStatusApproved && status != db_models.ClaimStatusRejected {
		return nil, utils.NewValidationError("status", "status must be approved or rejected")
	}

	rows, err := s.rewardRepo.ProcessClaim(ctx, claimID, status)
	if err != nil {
		if errors.Is(err, utils.ErrInsufficientBalance) {
			return nil, err
		}
		log.WithError(err).Error("Failed to process claim")
		return nil, utils.ErrDatabaseError
	}

	claim, err := s.rewardRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if claim == nil {
		return nil, utils.ErrNotFound
	}
	if rows == 0 {
		// Claim exists but was already decided: the decision is one-shot.
		return nil, utils.ErrInvalidTransition
	}

	s.publisher.Publish(events.Event{Name: events.ClaimProcessed, Data: response_models.ToClaimResponse(claim)})
	log.Info("Reward claim processed")
	return claim, nil
}

func (s *RewardService) ListClaims(ctx context.Context, actor *db_models.Account) ([]*db_models.RewardClaim, error) {
	if !actor.IsAdmin {
		return nil, utils.ErrForbidden
	}
	claims, err := s.rewardRepo.ListClaims(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return claims, nil
}
