package controllers

import (
	"net/http"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ExaminationController struct {
	Log                *zap.Logger
	ExaminationUsecase contracts.ExaminationUsecase
}

func NewExaminationController(logger *zap.Logger, examinationUsecase contracts.ExaminationUsecase) *ExaminationController {
	return &ExaminationController{
		Log:                logger,
		ExaminationUsecase: examinationUsecase,
	}
}

func (ctrl *ExaminationController) List(w http.ResponseWriter, r *http.Request) {
	examinations, err := ctrl.ExaminationUsecase.List(r.Context(), searchQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExaminationsSuccessMessage, examinations)
}

func (ctrl *ExaminationController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ExaminationForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	examination, err := ctrl.ExaminationUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "examination_recorded", utils.RequestIDFromContext(r.Context()),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateExaminationSuccessMessage, examination)
}

func (ctrl *ExaminationController) Update(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ExaminationForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	examination, err := ctrl.ExaminationUsecase.Update(r.Context(), chi.URLParam(r, constvars.URLParamID), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateExaminationSuccessMessage, examination)
}

func (ctrl *ExaminationController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.ExaminationUsecase.Delete(r.Context(), chi.URLParam(r, constvars.URLParamID)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteExaminationSuccessMessage, nil)
}

// Metrics previews the derived indicators while a form is being filled in.
func (ctrl *ExaminationController) Metrics(w http.ResponseWriter, r *http.Request) {
	request := new(requests.MetricsInput)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	metrics, err := ctrl.ExaminationUsecase.Metrics(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculateMetricsSuccessMessage, metrics)
}

func (ctrl *ExaminationController) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	report, err := ctrl.ExaminationUsecase.MonthlyReport(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MonthlyReportSuccessMessage, report)
}
