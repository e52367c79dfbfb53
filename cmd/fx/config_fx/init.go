package config_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"beacon/internal/config"
	"beacon/pkg/logger"
	"beacon/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideJWTMaker)

func provideLogger(cfg *config.Config) *logrus.Logger {
	return logger.New(cfg.LogLevel)
}

func provideJWTMaker(cfg *config.Config) *utils.JWTMaker {
	return utils.NewJWTMaker(cfg.JWTSecret, cfg.TokenTTL)
}
