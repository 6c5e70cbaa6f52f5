package controllers

import (
	"fmt"
	"net/http"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	schedules, err := ctrl.ScheduleUsecase.List(r.Context(), &requests.ScheduleListQuery{
		Status: query.Get(constvars.QueryParamStatus),
		Date:   strings.TrimSpace(query.Get(constvars.QueryParamDate)),
		Q:      strings.TrimSpace(query.Get(constvars.QueryParamQ)),
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchedulesSuccessMessage, schedules)
}

func (ctrl *ScheduleController) Calendar(w http.ResponseWriter, r *http.Request) {
	year, _, err := utils.QueryInt(r, constvars.QueryParamYear)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidQueryParam(err, constvars.QueryParamYear))
		return
	}
	month, _, err := utils.QueryInt(r, constvars.QueryParamMonth)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidQueryParam(err, constvars.QueryParamMonth))
		return
	}

	query := r.URL.Query()
	calendar, err := ctrl.ScheduleUsecase.Calendar(r.Context(), &requests.CalendarQuery{
		Year:   year,
		Month:  month,
		Date:   strings.TrimSpace(query.Get(constvars.QueryParamDate)),
		Q:      strings.TrimSpace(query.Get(constvars.QueryParamQ)),
		Status: query.Get(constvars.QueryParamStatus),
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCalendarSuccessMessage, calendar)
}

func (ctrl *ScheduleController) Upcoming(w http.ResponseWriter, r *http.Request) {
	schedules, err := ctrl.ScheduleUsecase.Upcoming(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchedulesSuccessMessage, schedules)
}

func (ctrl *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ScheduleForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	schedules, err := ctrl.ScheduleUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.CreateScheduleSuccessMessage
	if request.Weekly {
		message = constvars.CreateWeeklyScheduleSuccessMessage
	}
	utils.LogBusinessEvent(ctrl.Log, "schedule_created", utils.RequestIDFromContext(r.Context()),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID.String()),
		zap.Int(constvars.LoggingCountKey, len(schedules)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, schedules)
}

func (ctrl *ScheduleController) Update(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ScheduleForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	schedule, err := ctrl.ScheduleUsecase.Update(r.Context(), chi.URLParam(r, constvars.URLParamID), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateScheduleSuccessMessage, schedule)
}

func (ctrl *ScheduleController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ScheduleStatusForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	schedule, err := ctrl.ScheduleUsecase.UpdateStatus(r.Context(), chi.URLParam(r, constvars.URLParamID), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateScheduleStatusSuccessFormat, request.Status), schedule)
}

// Complete is the one-click "Selesai" action on the calendar.
func (ctrl *ScheduleController) Complete(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamID)
	schedule, err := ctrl.ScheduleUsecase.Complete(r.Context(), scheduleID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "schedule_completed", utils.RequestIDFromContext(r.Context()),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateScheduleStatusSuccessFormat, constvars.VisitStatusCompleted), schedule)
}

func (ctrl *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.ScheduleUsecase.Delete(r.Context(), chi.URLParam(r, constvars.URLParamID)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteScheduleSuccessMessage, nil)
}
