package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"beacon/internal/events"
	"beacon/internal/models/db_models"
	"beacon/internal/models/request_models"
	"beacon/internal/repositories"
	"beacon/pkg/tokencache"
	"beacon/pkg/utils"
)

// RegisterResult distinguishes the two registration outcomes: reporters
// get an immediate session, responders enter the pending-approval queue
// with no token.
type RegisterResult struct {
	Token           string
	Account         *db_models.Account
	PendingApproval bool
}

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req request_models.LoginRequest) (string, *db_models.Account, error)
	Logout(ctx context.Context, claims *utils.Claims)
	GetAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req request_models.UpdateProfileRequest) (*db_models.Account, error)
	ListPendingResponders(ctx context.Context, actor *db_models.Account) ([]*db_models.Account, error)
	DecideResponder(ctx context.Context, actor *db_models.Account, responderID uuid.UUID, approve bool) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwtMaker    *utils.JWTMaker
	denylist    tokencache.Denylist
	publisher   events.Publisher
	logger      *logrus.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	jwtMaker *utils.JWTMaker,
	denylist tokencache.Denylist,
	publisher events.Publisher,
	logger *logrus.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwtMaker:    jwtMaker,
		denylist:    denylist,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *AccountService) Register(ctx context.Context, req request_models.RegisterRequest) (*RegisterResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "Register",
		"role":    req.Role,
	})

	existing, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordHash:   hashedPassword,
		Role:           db_models.Role(req.Role),
		ApprovalStatus: db_models.ApprovalApproved,
	}
	if account.Role == db_models.RoleResponder {
		account.ApprovalStatus = db_models.ApprovalPending
	}

	if err := s.accountRepo.Insert(ctx, account); err != nil {
		log.WithError(err).Error("Failed to insert account")
		return nil, utils.ErrDatabaseError
	}

	if account.Role == db_models.RoleResponder {
		log.WithField("account_id", account.ID).Info("Responder registered, awaiting approval")
		return &RegisterResult{Account: account, PendingApproval: true}, nil
	}

	token, err := s.jwtMaker.CreateToken(account.ID, string(account.Role), account.IsAdmin)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.WithField("account_id", account.ID).Info("Account registered")
	return &RegisterResult{Token: token, Account: account}, nil
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, *db_models.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}
	if account == nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := s.jwtMaker.CreateToken(account.ID, string(account.Role), account.IsAdmin)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}

	s.logger.WithFields(logrus.Fields{
		"service":    "account",
		"method":     "Login",
		"account_id": account.ID,
	}).Info("Login successful")

	return token, account, nil
}

// Logout revokes the token server-side, best effort: the client discards
// its credentials regardless, so a failed revocation is only logged.
func (s *AccountService) Logout(ctx context.Context, claims *utils.Claims) {
	if err := s.denylist.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		s.logger.WithError(err).Warn("Failed to revoke token on logout")
	}
}

func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFound
	}
	return account, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, id uuid.UUID, req request_models.UpdateProfileRequest) (*db_models.Account, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != account.Email {
		other, err := s.accountRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other != nil {
			return nil, utils.ErrEmailAlreadyExists
		}
	}

	account.Name = req.Name
	account.Email = req.Email
	account.Phone = req.Phone
	if err := s.accountRepo.UpdateProfile(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return account, nil
}

func (s *AccountService) ListPendingResponders(ctx context.Context, actor *db_models.Account) ([]*db_models.Account, error) {
	if !actor.IsAdmin {
		return nil, utils.ErrForbidden
	}
	accounts, err := s.accountRepo.ListPendingResponders(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return accounts, nil
}

func (s *AccountService) DecideResponder(ctx context.Context, actor *db_models.Account, responderID uuid.UUID, approve bool) error {
	if !actor.IsAdmin {
		return utils.ErrForbidden
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":      "account",
		"method":       "DecideResponder",
		"responder_id": responderID,
		"approve":      approve,
	})

	decision := db_models.ApprovalDeclined
	eventName := events.ResponderDeclined
	if approve {
		decision = db_models.ApprovalApproved
		eventName = events.ResponderApproved
	}

	rows, err := s.accountRepo.DecideResponder(ctx, responderID, decision)
	if err != nil {
		log.WithError(err).Error("Failed to decide responder application")
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		target, err := s.accountRepo.FindByID(ctx, responderID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if target == nil {
			return utils.ErrNotFound
		}
		// Exists, but is not an undecided responder application.
		return utils.ErrInvalidTransition
	}

	s.publisher.Publish(events.Event{Name: eventName, Data: map[string]string{"responder_id": responderID.String()}})
	log.Info("Responder application decided")
	return nil
}
