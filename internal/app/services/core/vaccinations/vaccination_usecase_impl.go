package vaccinations

import (
	"context"
	"fmt"
	"net/url"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

const statusAll = "all"

type vaccinationUsecase struct {
	ApiClient contracts.PosyanduAPIClient
	Cache     contracts.EntityCache
	Announcer *events.Announcer
	Log       *zap.Logger
}

func NewVaccinationUsecase(
	apiClient contracts.PosyanduAPIClient,
	entityCache contracts.EntityCache,
	announcer *events.Announcer,
	logger *zap.Logger,
) contracts.VaccinationUsecase {
	return &vaccinationUsecase{
		ApiClient: apiClient,
		Cache:     entityCache,
		Announcer: announcer,
		Log:       logger,
	}
}

// List has no remote search endpoint, so q and status are matched locally.
func (uc *vaccinationUsecase) List(ctx context.Context, query *requests.VaccinationListQuery) ([]models.Vaccination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Q),
	)

	var vaccinations []models.Vaccination
	found, err := uc.Cache.GetList(ctx, constvars.ResourceVaccination, &vaccinations)
	if err != nil || !found {
		vaccinations = nil
		if err := uc.ApiClient.Get(ctx, constvars.RemotePathVaccinations, nil, &vaccinations); err != nil {
			uc.Log.Error("vaccinationUsecase.List error calling ApiClient.Get",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if vaccinations == nil {
			vaccinations = []models.Vaccination{}
		}
		_ = uc.Cache.SetList(ctx, constvars.ResourceVaccination, vaccinations)
	}

	filtered := filterVaccinations(vaccinations, query)
	uc.Log.Info("vaccinationUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingCacheHitKey, found),
		zap.Int(constvars.LoggingCountKey, len(filtered)),
	)
	return filtered, nil
}

func (uc *vaccinationUsecase) Create(ctx context.Context, request *requests.VaccinationForm) (*models.Vaccination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}

	vaccination := new(models.Vaccination)
	if err := uc.ApiClient.Post(ctx, constvars.RemotePathVaccinations, newPayload(request), vaccination); err != nil {
		uc.Log.Error("vaccinationUsecase.Create error calling ApiClient.Post",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceVaccination, vaccination.ID.String())

	uc.Log.Info("vaccinationUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccination.ID.String()),
	)
	return vaccination, nil
}

func (uc *vaccinationUsecase) Update(ctx context.Context, vaccinationID string, request *requests.VaccinationForm) (*models.Vaccination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}

	vaccination := new(models.Vaccination)
	if err := uc.ApiClient.Put(ctx, vaccinationPath(vaccinationID), newPayload(request), vaccination); err != nil {
		uc.Log.Error("vaccinationUsecase.Update error calling ApiClient.Put",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceVaccination, vaccinationID)

	uc.Log.Info("vaccinationUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)
	return vaccination, nil
}

func (uc *vaccinationUsecase) Delete(ctx context.Context, vaccinationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)

	if err := uc.ApiClient.Delete(ctx, vaccinationPath(vaccinationID), nil); err != nil {
		uc.Log.Error("vaccinationUsecase.Delete error calling ApiClient.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
			zap.Error(err),
		)
		return err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceVaccination, vaccinationID)

	uc.Log.Info("vaccinationUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)
	return nil
}

// Register signs a patient up for a vaccination drive. The API wants the patient id as a number.
func (uc *vaccinationUsecase) Register(ctx context.Context, vaccinationID string, request *requests.RegistrationForm) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID.String()),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return exceptions.ErrFormValidation(fields)
	}
	userID, err := request.PatientID.Int()
	if err != nil {
		return exceptions.ErrFormValidation(map[string]string{"patient_id": "Pilih pasien terlebih dahulu"})
	}

	path := fmt.Sprintf(constvars.RemotePathVaccinationRegister, url.PathEscape(vaccinationID))
	if err := uc.ApiClient.Post(ctx, path, models.VaccinationRegistration{UserID: userID}, nil); err != nil {
		uc.Log.Error("vaccinationUsecase.Register error calling ApiClient.Post",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
			zap.Error(err),
		)
		return err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceVaccination, vaccinationID)

	uc.Log.Info("vaccinationUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, vaccinationID),
	)
	return nil
}

func newPayload(request *requests.VaccinationForm) models.VaccinationPayload {
	status := request.Status
	if status == "" {
		status = constvars.VaccinationStatusActive
	}
	return models.VaccinationPayload{
		Title:           strings.TrimSpace(request.Title),
		Description:     request.Description,
		Date:            request.Date,
		Location:        strings.TrimSpace(request.Location),
		VaccineType:     strings.TrimSpace(request.VaccineType),
		MaxParticipants: request.MaxParticipants,
		Status:          status,
	}
}

// filterVaccinations matches q against title, location and vaccine type.
func filterVaccinations(vaccinations []models.Vaccination, query *requests.VaccinationListQuery) []models.Vaccination {
	q := strings.ToLower(strings.TrimSpace(query.Q))
	matched := make([]models.Vaccination, 0, len(vaccinations))
	for _, vaccination := range vaccinations {
		if query.Status != "" && query.Status != statusAll && vaccination.Status != query.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(vaccination.Title), q) &&
			!strings.Contains(strings.ToLower(vaccination.Location), q) &&
			!strings.Contains(strings.ToLower(vaccination.VaccineType), q) {
			continue
		}
		matched = append(matched, vaccination)
	}
	return matched
}

func vaccinationPath(vaccinationID string) string {
	return constvars.RemotePathVaccinations + "/" + url.PathEscape(vaccinationID)
}
