package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"beacon/internal/config"
	"beacon/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
