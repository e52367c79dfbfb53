package report_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"beacon/internal/config"
	"beacon/internal/events"
	"beacon/internal/repositories"
	"beacon/internal/services"
)

var Module = fx.Provide(
	provideReportRepo, provideReportService)

func provideReportRepo(db *gorm.DB) repositories.ReportRepository {
	return repositories.NewReportRepository(db)
}

func provideReportService(
	reportRepo repositories.ReportRepository,
	cfg *config.Config,
	publisher events.Publisher,
	logger *logrus.Logger,
) services.ReportServiceInterface {
	return services.NewReportService(reportRepo, cfg, publisher, logger)
}
