package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	events_mocks "beacon/internal/events/mocks"
	"beacon/internal/models/db_models"
	"beacon/internal/repositories"
	"beacon/internal/repositories/mocks"
	"beacon/pkg/utils"
)

func newTestRewardService(t *testing.T) (*RewardService, *mocks.MockRewardRepository, *events_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRewardRepository(ctrl)
	publisherMock := events_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewRewardService(repoMock, publisherMock, logger)
	return service.(*RewardService), repoMock, publisherMock
}

func TestRequestClaim_Success(t *testing.T) {
	service, repoMock, publisherMock := newTestRewardService(t)
	ctx := context.Background()
	user := reporter()

	repoMock.EXPECT().AvailableBalance(ctx, user.ID).Return(30, nil)
	repoMock.EXPECT().InsertClaim(ctx, gomock.Any()).Return(nil)
	publisherMock.EXPECT().Publish(gomock.Any())

	claim, err := service.RequestClaim(ctx, user, 20)

	require.NoError(t, err)
	assert.Equal(t, db_models.ClaimStatusPending, claim.Status)
	assert.Equal(t, 20, claim.Points)
	assert.Equal(t, user.ID, claim.UserID)
}

func TestRequestClaim_NonPositivePoints(t *testing.T) {
	service, _, _ := newTestRewardService(t)

	_, err := service.RequestClaim(context.Background(), reporter(), 0)

	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestRequestClaim_InsufficientBalance(t *testing.T) {
	service, repoMock, _ := newTestRewardService(t)
	ctx := context.Background()
	user := reporter()

	repoMock.EXPECT().AvailableBalance(ctx, user.ID).Return(10, nil)

	_, err := service.RequestClaim(ctx, user, 50)

	assert.ErrorIs(t, err, utils.ErrInsufficientBalance)
}

func TestProcessClaim_NonAdminForbidden(t *testing.T) {
	service, _, _ := newTestRewardService(t)

	_, err := service.ProcessClaim(context.Background(), reporter(), uuid.New(), "approved")

	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestProcessClaim_BadDecision(t *testing.T) {
	service, _, _ := newTestRewardService(t)

	admin := &db_models.Account{IsAdmin: true}

	_, err := service.ProcessClaim(context.Background(), admin, uuid.New(), "maybe")

	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestProcessClaim_Approve(t *testing.T) {
	service, repoMock, publisherMock := newTestRewardService(t)
	ctx := context.Background()
	admin := &db_models.Account{IsAdmin: true}
	claimID := uuid.New()

	approved := &db_models.RewardClaim{Points: 20, Status: db_models.ClaimStatusApproved}
	approved.ID = claimID

	repoMock.EXPECT().ProcessClaim(ctx, claimID, db_models.ClaimStatusApproved).Return(int64(1), nil)
	repoMock.EXPECT().FindClaimByID(ctx, claimID).Return(approved, nil)
	publisherMock.EXPECT().Publish(gomock.Any())

	claim, err := service.ProcessClaim(ctx, admin, claimID, "approved")

	require.NoError(t, err)
	assert.Equal(t, db_models.ClaimStatusApproved, claim.Status)
}

func TestProcessClaim_AlreadyDecided(t *testing.T) {
	service, repoMock, _ := newTestRewardService(t)
	ctx := context.Background()
	admin := &db_models.Account{IsAdmin: true}
	claimID := uuid.New()

	rejected := &db_models.RewardClaim{Points: 20, Status: db_models.ClaimStatusRejected}
	rejected.ID = claimID

	repoMock.EXPECT().ProcessClaim(ctx, claimID, db_models.ClaimStatusApproved).Return(int64(0), nil)
	repoMock.EXPECT().FindClaimByID(ctx, claimID).Return(rejected, nil)

	_, err := service.ProcessClaim(ctx, admin, claimID, "approved")

	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestProcessClaim_OverdrawRollsBack(t *testing.T) {
	service, repoMock, _ := newTestRewardService(t)
	ctx := context.Background()
	admin := &db_models.Account{IsAdmin: true}
	claimID := uuid.New()

	repoMock.EXPECT().
		ProcessClaim(ctx, claimID, db_models.ClaimStatusApproved).
		Return(int64(0), utils.ErrInsufficientBalance)

	_, err := service.ProcessClaim(ctx, admin, claimID, "approved")

	assert.ErrorIs(t, err, utils.ErrInsufficientBalance)
}

func TestListClaims_NonAdminForbidden(t *testing.T) {
	service, _, _ := newTestRewardService(t)

	_, err := service.ListClaims(context.Background(), reporter())

	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestLeaderboard_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRewardRepository(ctrl)
	service := NewLeaderboardService(repoMock)

	_, err := service.TopUsers(context.Background(), reporter(), 10)

	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestLeaderboard_MapsRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRewardRepository(ctrl)
	service := NewLeaderboardService(repoMock)

	ctx := context.Background()
	admin := &db_models.Account{IsAdmin: true}
	first := uuid.New()
	second := uuid.New()

	repoMock.EXPECT().Leaderboard(ctx, 10).Return([]*repositories.LeaderboardRow{
		{ID: first, Name: "Ada", TotalPoints: 30},
		{ID: second, Name: "Bob", TotalPoints: 15},
	}, nil)

	entries, err := service.TopUsers(ctx, admin, 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.String(), entries[0].ID)
	assert.Equal(t, 30, entries[0].RewardsSumPoints)
	assert.Equal(t, "Bob", entries[1].Name)
}
