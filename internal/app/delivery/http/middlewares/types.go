package middlewares

import (
	"posyandu-console/internal/app/config"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/services/shared/metrics"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLog      *logrus.Logger
	AuthUsecase    contracts.AuthUsecase
	Metrics        *metrics.Collector
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	accessLog *logrus.Logger,
	authUsecase contracts.AuthUsecase,
	collector *metrics.Collector,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AccessLog:      accessLog,
		AuthUsecase:    authUsecase,
		Metrics:        collector,
		InternalConfig: internalConfig,
	}
}
