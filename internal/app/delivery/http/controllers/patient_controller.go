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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) List(w http.ResponseWriter, r *http.Request) {
	patients, err := ctrl.PatientUsecase.List(r.Context(), searchQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, patients)
}

func (ctrl *PatientController) Detail(w http.ResponseWriter, r *http.Request) {
	patient, err := ctrl.PatientUsecase.FindByID(r.Context(), chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, patient)
}

func (ctrl *PatientController) Examinations(w http.ResponseWriter, r *http.Request) {
	history, err := ctrl.PatientUsecase.ExaminationHistory(r.Context(), chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientExaminationsSuccessMessage, history)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PatientForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patient, err := ctrl.PatientUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_created", utils.RequestIDFromContext(r.Context()),
		zap.String(constvars.LoggingPatientIDKey, patient.ID.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, patient)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamID)
	request := new(requests.PatientForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patient, err := ctrl.PatientUsecase.Update(r.Context(), patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, patient)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamID)
	if err := ctrl.PatientUsecase.Delete(r.Context(), patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_deleted", utils.RequestIDFromContext(r.Context()),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}
