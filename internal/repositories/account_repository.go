package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beacon/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdateProfile(ctx context.Context, account *db_models.Account) error
	ListPendingResponders(ctx context.Context) ([]*db_models.Account, error)
	// DecideResponder flips a still-pending responder application to the
	// given decision. Returns the number of rows changed: zero means the
	// target was missing, not a responder, or already decided.
	DecideResponder(ctx context.Context, id uuid.UUID, decision db_models.ApprovalStatus) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) UpdateProfile(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Model(account).Updates(map[string]interface{}{
		"name":       account.Name,
		"email":      account.Email,
		"phone":      account.Phone,
		"updated_at": time.Now().Unix(),
	}).Error
}

func (a *accountRepository) ListPendingResponders(ctx context.Context) ([]*db_models.Account, error) {
	var accounts []*db_models.Account
	err := a.db.WithContext(ctx).
		Where("role = ? AND approval_status = ?", db_models.RoleResponder, db_models.ApprovalPending).
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) DecideResponder(ctx context.Context, id uuid.UUID, decision db_models.ApprovalStatus) (int64, error) {
	result := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ? AND role = ? AND approval_status = ?", id, db_models.RoleResponder, db_models.ApprovalPending).
		Updates(map[string]interface{}{
			"approval_status": decision,
			"updated_at":      time.Now().Unix(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
