package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	List(ctx context.Context, query *requests.ScheduleListQuery) ([]models.VisitSchedule, error)
	Calendar(ctx context.Context, query *requests.CalendarQuery) (*responses.ScheduleCalendar, error)
	Upcoming(ctx context.Context) ([]models.VisitSchedule, error)
	Create(ctx context.Context, request *requests.ScheduleForm) ([]models.VisitSchedule, error)
	Update(ctx context.Context, scheduleID string, request *requests.ScheduleForm) (*models.VisitSchedule, error)
	UpdateStatus(ctx context.Context, scheduleID string, request *requests.ScheduleStatusForm) (*models.VisitSchedule, error)
	Complete(ctx context.Context, scheduleID string) (*models.VisitSchedule, error)
	Delete(ctx context.Context, scheduleID string) error
}
