package controllers

import (
	"net/http"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/utils"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VaccinationController struct {
	Log                *zap.Logger
	VaccinationUsecase contracts.VaccinationUsecase
}

func NewVaccinationController(logger *zap.Logger, vaccinationUsecase contracts.VaccinationUsecase) *VaccinationController {
	return &VaccinationController{
		Log:                logger,
		VaccinationUsecase: vaccinationUsecase,
	}
}

func (ctrl *VaccinationController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vaccinations, err := ctrl.VaccinationUsecase.List(r.Context(), &requests.VaccinationListQuery{
		Q:      strings.TrimSpace(query.Get(constvars.QueryParamQ)),
		Status: query.Get(constvars.QueryParamStatus),
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVaccinationsSuccessMessage, vaccinations)
}

func (ctrl *VaccinationController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VaccinationForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	vaccination, err := ctrl.VaccinationUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateVaccinationSuccessMessage, vaccination)
}

func (ctrl *VaccinationController) Update(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VaccinationForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	vaccination, err := ctrl.VaccinationUsecase.Update(r.Context(), chi.URLParam(r, constvars.URLParamID), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateVaccinationSuccessMessage, vaccination)
}

func (ctrl *VaccinationController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.VaccinationUsecase.Delete(r.Context(), chi.URLParam(r, constvars.URLParamID)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteVaccinationSuccessMessage, nil)
}

func (ctrl *VaccinationController) Register(w http.ResponseWriter, r *http.Request) {
	vaccinationID := chi.URLParam(r, constvars.URLParamID)
	request := new(requests.RegistrationForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.VaccinationUsecase.Register(r.Context(), vaccinationID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "vaccination_registration", utils.RequestIDFromContext(r.Context()),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterVaccinationSuccessMessage, nil)
}
