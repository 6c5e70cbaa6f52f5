package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/dto/requests"
)

type KaderUsecase interface {
	List(ctx context.Context, query *requests.SearchQuery) ([]models.Kader, error)
	FindByID(ctx context.Context, kaderID string) (*models.Kader, error)
	Create(ctx context.Context, request *requests.KaderForm) (*models.Kader, error)
	Update(ctx context.Context, kaderID string, request *requests.KaderForm) (*models.Kader, error)
	Delete(ctx context.Context, kaderID string) error
}
