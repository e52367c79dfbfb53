package account_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"beacon/internal/events"
	"beacon/internal/repositories"
	"beacon/internal/services"
	"beacon/pkg/tokencache"
	"beacon/pkg/utils"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	jwtMaker *utils.JWTMaker,
	denylist tokencache.Denylist,
	publisher events.Publisher,
	logger *logrus.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwtMaker, denylist, publisher, logger)
}
