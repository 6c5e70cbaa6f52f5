package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/dto/requests"
)

type VaccinationUsecase interface {
	List(ctx context.Context, query *requests.VaccinationListQuery) ([]models.Vaccination, error)
	Create(ctx context.Context, request *requests.VaccinationForm) (*models.Vaccination, error)
	Update(ctx context.Context, vaccinationID string, request *requests.VaccinationForm) (*models.Vaccination, error)
	Delete(ctx context.Context, vaccinationID string) error
	Register(ctx context.Context, vaccinationID string, request *requests.RegistrationForm) error
}
