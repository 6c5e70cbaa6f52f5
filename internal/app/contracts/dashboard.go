package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
)

type DashboardUsecase interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}
