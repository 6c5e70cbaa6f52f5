package schedules

import (
	"context"
	"fmt"
	"net/url"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/pkg/calendar"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dates"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/dto/responses"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type schedulePayload struct {
	PatientID       int64  `json:"patient_id"`
	VisitDate       string `json:"visit_date"`
	VisitTime       string `json:"visit_time"`
	VisitType       string `json:"visit_type"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	ExaminationType string `json:"examination_type"`
	PetugasID       *int64 `json:"petugas_id"`
}

type weeklyPayload struct {
	PatientID       int64  `json:"patient_id"`
	StartDate       string `json:"start_date"`
	VisitTime       string `json:"visit_time"`
	VisitType       string `json:"visit_type"`
	PetugasID       *int64 `json:"petugas_id"`
	ExaminationType string `json:"examination_type"`
	Notes           string `json:"notes"`
}

type statusPayload struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type statusResult struct {
	Schedule models.VisitSchedule `json:"schedule"`
}

type scheduleUsecase struct {
	ApiClient     contracts.PosyanduAPIClient
	Cache         contracts.EntityCache
	LockerService contracts.LockerService
	Announcer     *events.Announcer
	WeeklyLockTTL time.Duration
	Log           *zap.Logger
	now           func() time.Time
}

func NewScheduleUsecase(
	apiClient contracts.PosyanduAPIClient,
	entityCache contracts.EntityCache,
	lockerService contracts.LockerService,
	announcer *events.Announcer,
	weeklyLockTTL time.Duration,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ApiClient:     apiClient,
		Cache:         entityCache,
		LockerService: lockerService,
		Announcer:     announcer,
		WeeklyLockTTL: weeklyLockTTL,
		Log:           logger,
		now:           time.Now,
	}
}

// List filters the schedules locally. A date filter drops the text query.
func (uc *scheduleUsecase) List(ctx context.Context, query *requests.ScheduleListQuery) ([]models.VisitSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Q),
	)

	schedules, err := uc.all(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.List error fetching schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	filter := calendar.Filter{Query: query.Q, Status: query.Status}
	if query.Date != "" {
		filter = filter.SelectDate(query.Date)
	}
	filtered := filter.Apply(schedules)

	uc.Log.Info("scheduleUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(filtered)),
	)
	return filtered, nil
}

// Calendar renders one month. The grid always shows every schedule; the side list follows the filter.
func (uc *scheduleUsecase) Calendar(ctx context.Context, query *requests.CalendarQuery) (*responses.ScheduleCalendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Calendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.QueryParamYear, query.Year),
		zap.Int(constvars.QueryParamMonth, query.Month),
	)

	now := uc.now()
	cursor := calendar.CursorAt(now)
	if query.Year != 0 || query.Month != 0 {
		cursor = calendar.Cursor{Year: query.Year, Month: time.Month(query.Month)}
	}
	if !cursor.Valid() {
		return nil, exceptions.ErrInvalidQueryParam(nil, constvars.QueryParamMonth)
	}

	filter := calendar.Filter{Query: query.Q, Status: query.Status}
	if query.Date != "" {
		if _, err := dates.ParseLocalDate(query.Date); err != nil {
			return nil, exceptions.ErrInvalidQueryParam(err, constvars.QueryParamDate)
		}
		filter = filter.SelectDate(query.Date)
	}

	schedules, err := uc.all(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.Calendar error fetching schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	previous, next := cursor.Prev(), cursor.Next()
	result := &responses.ScheduleCalendar{
		Calendar: calendar.Build(schedules, cursor.Year, cursor.Month, calendar.Options{
			Today:        now,
			SelectedDate: filter.Date,
		}),
		Previous:  responses.MonthRef{Year: previous.Year, Month: int(previous.Month)},
		Next:      responses.MonthRef{Year: next.Year, Month: int(next.Month)},
		Filter:    responses.ScheduleFilter{Query: filter.Query, Status: filter.Status, Date: filter.Date},
		Schedules: filter.Apply(schedules),
		Upcoming:  calendar.Upcoming(schedules, now, constvars.UpcomingSchedulesLimit),
	}

	uc.Log.Info("scheduleUsecase.Calendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Schedules)),
	)
	return result, nil
}

func (uc *scheduleUsecase) Upcoming(ctx context.Context) ([]models.VisitSchedule, error) {
	schedules, err := uc.all(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.Upcoming(schedules, uc.now(), constvars.UpcomingSchedulesLimit), nil
}

// Create stores one visit, or four weekly visits when request.Weekly is set.
func (uc *scheduleUsecase) Create(ctx context.Context, request *requests.ScheduleForm) ([]models.VisitSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID.String()),
		zap.Bool("weekly", request.Weekly),
	)

	payload, err := newSchedulePayload(request)
	if err != nil {
		return nil, err
	}
	if request.Weekly {
		return uc.createWeekly(ctx, payload)
	}

	schedule := new(models.VisitSchedule)
	if err := uc.ApiClient.Post(ctx, constvars.RemotePathSchedules, payload, schedule); err != nil {
		uc.Log.Error("scheduleUsecase.Create error calling ApiClient.Post",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceSchedule, schedule.ID.String())

	uc.Log.Info("scheduleUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, schedule.ID.String()),
	)
	return []models.VisitSchedule{*schedule}, nil
}

// createWeekly holds a lock per patient and start date so that a double submit
// cannot expand the same series twice, and insists on all four records coming back.
func (uc *scheduleUsecase) createWeekly(ctx context.Context, payload *schedulePayload) ([]models.VisitSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lockKey := fmt.Sprintf(constvars.WeeklyLockKeyFormat, fmt.Sprint(payload.PatientID), dates.DatePortion(payload.VisitDate))

	acquired, token, err := uc.LockerService.TryLock(ctx, lockKey, uc.WeeklyLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrWeeklyScheduleLocked(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, token); err != nil {
			uc.Log.Warn("scheduleUsecase.createWeekly error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingLockKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	weekly := weeklyPayload{
		PatientID:       payload.PatientID,
		StartDate:       payload.VisitDate,
		VisitTime:       payload.VisitTime,
		VisitType:       payload.VisitType,
		PetugasID:       payload.PetugasID,
		ExaminationType: payload.ExaminationType,
		Notes:           payload.Notes,
	}
	result := new(models.WeeklyScheduleResult)
	if err := uc.ApiClient.Post(ctx, constvars.RemotePathSchedulesWeekly, weekly, result); err != nil {
		uc.Log.Error("scheduleUsecase.createWeekly error calling ApiClient.Post",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Whatever was stored upstream must be dropped from the cache, even a partial series.
	uc.Announcer.EntityChanged(ctx, constvars.ResourceSchedule, "")
	if len(result.Schedules) != constvars.WeeklyScheduleOccurrences {
		uc.Log.Error("scheduleUsecase.createWeekly incomplete series",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, len(result.Schedules)),
		)
		return nil, exceptions.ErrWeeklySchedulePartial(len(result.Schedules), constvars.WeeklyScheduleOccurrences)
	}

	uc.Log.Info("scheduleUsecase.createWeekly succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Schedules)),
	)
	return result.Schedules, nil
}

func (uc *scheduleUsecase) Update(ctx context.Context, scheduleID string, request *requests.ScheduleForm) (*models.VisitSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	payload, err := newSchedulePayload(request)
	if err != nil {
		return nil, err
	}

	schedule := new(models.VisitSchedule)
	if err := uc.ApiClient.Put(ctx, schedulePath(scheduleID), payload, schedule); err != nil {
		uc.Log.Error("scheduleUsecase.Update error calling ApiClient.Put",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceSchedule, scheduleID)

	uc.Log.Info("scheduleUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)
	return schedule, nil
}

func (uc *scheduleUsecase) UpdateStatus(ctx context.Context, scheduleID string, request *requests.ScheduleStatusForm) (*models.VisitSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.String(constvars.QueryParamStatus, request.Status),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}

	result := new(statusResult)
	path := fmt.Sprintf(constvars.RemotePathScheduleStatusFormat, url.PathEscape(scheduleID))
	if err := uc.ApiClient.Put(ctx, path, statusPayload{Status: request.Status, Notes: request.Notes}, result); err != nil {
		uc.Log.Error("scheduleUsecase.UpdateStatus error calling ApiClient.Put",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceSchedule, scheduleID)

	uc.Log.Info("scheduleUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)
	return &result.Schedule, nil
}

// Complete is the quick action on a visit card. Only Terjadwal visits can be completed.
func (uc *scheduleUsecase) Complete(ctx context.Context, scheduleID string) (*models.VisitSchedule, error) {
	current, err := uc.find(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if current.Status != constvars.VisitStatusScheduled {
		return nil, exceptions.ErrStatusTransitionNotAllowed(current.Status)
	}
	return uc.UpdateStatus(ctx, scheduleID, &requests.ScheduleStatusForm{Status: constvars.VisitStatusCompleted})
}

func (uc *scheduleUsecase) Delete(ctx context.Context, scheduleID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	if err := uc.ApiClient.Delete(ctx, schedulePath(scheduleID), nil); err != nil {
		uc.Log.Error("scheduleUsecase.Delete error calling ApiClient.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
			zap.Error(err),
		)
		return err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceSchedule, scheduleID)

	uc.Log.Info("scheduleUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)
	return nil
}

// find looks the schedule up in the list, since the API has no single-schedule read.
func (uc *scheduleUsecase) find(ctx context.Context, scheduleID string) (*models.VisitSchedule, error) {
	schedules, err := uc.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		if schedules[i].ID.String() == scheduleID {
			return &schedules[i], nil
		}
	}
	return nil, exceptions.ErrEntityNotFound(constvars.ResourceSchedule, scheduleID)
}

func (uc *scheduleUsecase) all(ctx context.Context) ([]models.VisitSchedule, error) {
	var schedules []models.VisitSchedule
	if found, err := uc.Cache.GetList(ctx, constvars.ResourceSchedule, &schedules); err == nil && found {
		return schedules, nil
	}

	schedules = nil
	if err := uc.ApiClient.Get(ctx, constvars.RemotePathSchedules, nil, &schedules); err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []models.VisitSchedule{}
	}
	_ = uc.Cache.SetList(ctx, constvars.ResourceSchedule, schedules)
	return schedules, nil
}

// newSchedulePayload validates the form and fills the defaults of an empty form.
func newSchedulePayload(request *requests.ScheduleForm) (*schedulePayload, error) {
	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}
	patientID, err := request.PatientID.Int()
	if err != nil {
		return nil, exceptions.ErrFormValidation(map[string]string{"patient_id": "Pilih pasien terlebih dahulu"})
	}

	payload := &schedulePayload{
		PatientID:       patientID,
		VisitDate:       request.VisitDate,
		VisitTime:       request.VisitTime,
		VisitType:       valueOr(request.VisitType, constvars.VisitTypeHome),
		Status:          valueOr(request.Status, constvars.VisitStatusScheduled),
		Notes:           request.Notes,
		ExaminationType: valueOr(request.ExaminationType, constvars.DefaultExaminationType),
	}
	if request.PetugasID != "" {
		if petugasID, err := request.PetugasID.Int(); err == nil {
			payload.PetugasID = &petugasID
		}
	}
	return payload, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func schedulePath(scheduleID string) string {
	return constvars.RemotePathSchedules + "/" + url.PathEscape(scheduleID)
}
