package controllers

import (
	"io"
	"mime"
	"net/http"
	"posyandu-console/internal/app/config"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const kaderPhotoField = "photo"

type KaderController struct {
	Log            *zap.Logger
	KaderUsecase   contracts.KaderUsecase
	InternalConfig *config.InternalConfig
}

func NewKaderController(logger *zap.Logger, kaderUsecase contracts.KaderUsecase, internalConfig *config.InternalConfig) *KaderController {
	return &KaderController{
		Log:            logger,
		KaderUsecase:   kaderUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *KaderController) List(w http.ResponseWriter, r *http.Request) {
	kaders, err := ctrl.KaderUsecase.List(r.Context(), searchQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetKadersSuccessMessage, kaders)
}

func (ctrl *KaderController) Detail(w http.ResponseWriter, r *http.Request) {
	kader, err := ctrl.KaderUsecase.FindByID(r.Context(), chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetKadersSuccessMessage, kader)
}

func (ctrl *KaderController) Create(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.parseForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	kader, err := ctrl.KaderUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "kader_created", utils.RequestIDFromContext(r.Context()),
		zap.String(constvars.LoggingEntityIDKey, kader.ID.String()),
		zap.Bool("with_photo", request.Photo != nil),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateKaderSuccessMessage, kader)
}

func (ctrl *KaderController) Update(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.parseForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	kader, err := ctrl.KaderUsecase.Update(r.Context(), chi.URLParam(r, constvars.URLParamID), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateKaderSuccessMessage, kader)
}

func (ctrl *KaderController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.KaderUsecase.Delete(r.Context(), chi.URLParam(r, constvars.URLParamID)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteKaderSuccessMessage, nil)
}

// parseForm accepts JSON, or multipart when the browser sends a new photo.
func (ctrl *KaderController) parseForm(r *http.Request) (*requests.KaderForm, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	if mediaType != constvars.MIMEMultipartForm {
		request := new(requests.KaderForm)
		if err := decodeJSON(r, request); err != nil {
			return nil, err
		}
		return request, nil
	}

	maxBytes := ctrl.InternalConfig.Minio.PhotoMaxSizeInMB << 20
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	request := requests.KaderFormFromValues(r.FormValue)

	file, header, err := r.FormFile(kaderPhotoField)
	if err == http.ErrMissingFile {
		return &request, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	if int64(len(data)) > maxBytes {
		return nil, exceptions.ErrFormValidation(map[string]string{kaderPhotoField: "Ukuran foto terlalu besar"})
	}
	if len(data) > 0 {
		request.Photo = &models.KaderPhoto{
			FileName:    header.Filename,
			ContentType: header.Header.Get(constvars.HeaderContentType),
			Data:        data,
		}
	}
	return &request, nil
}
