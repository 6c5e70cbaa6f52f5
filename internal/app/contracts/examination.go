package contracts

import (
	"context"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/dto/responses"
	"posyandu-console/internal/pkg/health"
	"posyandu-console/internal/pkg/report"
)

type ExaminationUsecase interface {
	List(ctx context.Context, query *requests.SearchQuery) ([]responses.Examination, error)
	Create(ctx context.Context, request *requests.ExaminationForm) (*responses.Examination, error)
	Update(ctx context.Context, examinationID string, request *requests.ExaminationForm) (*responses.Examination, error)
	Delete(ctx context.Context, examinationID string) error
	Metrics(ctx context.Context, request *requests.MetricsInput) (*health.Metrics, error)
	MonthlyReport(ctx context.Context) (*report.Report, error)
}
