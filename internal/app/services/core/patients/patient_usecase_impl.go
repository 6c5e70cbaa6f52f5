package patients

import (
	"context"
	"fmt"
	"net/url"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/app/services/shared/search"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/dto/responses"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/health"
	"posyandu-console/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	ApiClient contracts.PosyanduAPIClient
	Cache     contracts.EntityCache
	Announcer *events.Announcer
	Search    *search.Coordinator
	BPPolicy  health.BloodPressurePolicy
	Log       *zap.Logger
	now       func() time.Time
}

func NewPatientUsecase(
	apiClient contracts.PosyanduAPIClient,
	entityCache contracts.EntityCache,
	announcer *events.Announcer,
	searchCoordinator *search.Coordinator,
	bpPolicy health.BloodPressurePolicy,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		ApiClient: apiClient,
		Cache:     entityCache,
		Announcer: announcer,
		Search:    searchCoordinator,
		BPPolicy:  bpPolicy,
		Log:       logger,
		now:       time.Now,
	}
}

// List returns every patient, or the search results when query.Q is set.
// The status filter is applied locally; "all" or empty disables it.
func (uc *patientUsecase) List(ctx context.Context, query *requests.SearchQuery) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Q),
	)

	var (
		patients []models.Patient
		err      error
	)
	if q := strings.TrimSpace(query.Q); q != "" {
		err = uc.Search.Run(ctx, constvars.ResourcePatient, func(ctx context.Context) error {
			return uc.ApiClient.Get(ctx, constvars.RemotePathPatientsSearch, url.Values{constvars.QueryParamQ: {q}}, &patients)
		})
	} else {
		patients, err = uc.all(ctx)
	}
	if err != nil {
		uc.Log.Error("patientUsecase.List error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	filtered := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		patient.ApplyListDefaults(now)
		if query.Status != "" && query.Status != "all" && patient.Status != query.Status {
			continue
		}
		filtered = append(filtered, patient)
	}

	uc.Log.Info("patientUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(filtered)),
	)
	return filtered, nil
}

// all reads the full list through the entity cache.
func (uc *patientUsecase) all(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if found, err := uc.Cache.GetList(ctx, constvars.ResourcePatient, &patients); err == nil && found {
		return patients, nil
	}

	patients = nil
	if err := uc.ApiClient.Get(ctx, constvars.RemotePathPatients, nil, &patients); err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	_ = uc.Cache.SetList(ctx, constvars.ResourcePatient, patients)
	return patients, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient := new(models.Patient)
	if found, err := uc.Cache.GetEntity(ctx, constvars.ResourcePatient, patientID, patient); err == nil && found {
		return patient, nil
	}

	err := uc.ApiClient.Get(ctx, patientPath(patientID), nil, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error calling ApiClient.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ApplyListDefaults(uc.now())
	_ = uc.Cache.SetEntity(ctx, constvars.ResourcePatient, patientID, patient)

	uc.Log.Info("patientUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.PatientForm) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}

	patient := new(models.Patient)
	err := uc.ApiClient.Post(ctx, constvars.RemotePathPatients, request, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error calling ApiClient.Post",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourcePatient, patient.ID.String())

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID.String()),
	)
	return patient, nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.PatientForm) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}

	patient := new(models.Patient)
	err := uc.ApiClient.Put(ctx, patientPath(patientID), request, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Update error calling ApiClient.Put",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourcePatient, patientID)

	uc.Log.Info("patientUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	err := uc.ApiClient.Delete(ctx, patientPath(patientID), nil)
	if err != nil {
		uc.Log.Error("patientUsecase.Delete error calling ApiClient.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourcePatient, patientID)

	uc.Log.Info("patientUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

// ExaminationHistory labels each past examination with the configured blood pressure
// table and the cholesterol and fasting sugar interpretations.
func (uc *patientUsecase) ExaminationHistory(ctx context.Context, patientID string) ([]responses.ExaminationHistoryEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.ExaminationHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	var examinations []models.Examination
	err := uc.ApiClient.Get(ctx, fmt.Sprintf(constvars.RemotePathPatientExaminations, url.PathEscape(patientID)), nil, &examinations)
	if err != nil {
		uc.Log.Error("patientUsecase.ExaminationHistory error calling ApiClient.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	history := make([]responses.ExaminationHistoryEntry, 0, len(examinations))
	for _, exam := range examinations {
		entry := responses.ExaminationHistoryEntry{
			Examination:        exam,
			BloodPressureLabel: health.InterpretBloodPressure(uc.BPPolicy, exam.BloodPressureSystolic.Float64, exam.BloodPressureDiastolic.Float64),
			CholesterolLabel:   health.InterpretCholesterol(exam.Cholesterol.Float64),
			BloodSugarLabel:    health.InterpretFastingBloodSugar(exam.BloodSugar.Float64),
		}
		if bmi, ok := health.BMI(exam.Weight.Float64, exam.Height.Float64); ok {
			entry.BMI = &bmi
		}
		history = append(history, entry)
	}

	uc.Log.Info("patientUsecase.ExaminationHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(history)),
	)
	return history, nil
}

func patientPath(patientID string) string {
	return constvars.RemotePathPatients + "/" + url.PathEscape(patientID)
}
