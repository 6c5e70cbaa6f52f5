package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	List(ctx context.Context, query *requests.SearchQuery) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Create(ctx context.Context, request *requests.PatientForm) (*models.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.PatientForm) (*models.Patient, error)
	Delete(ctx context.Context, patientID string) error
	ExaminationHistory(ctx context.Context, patientID string) ([]responses.ExaminationHistoryEntry, error)
}
