package examinations

import (
	"context"
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
	"posyandu-console/internal/pkg/report"
	"posyandu-console/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type examinationUsecase struct {
	ApiClient contracts.PosyanduAPIClient
	Cache     contracts.EntityCache
	Announcer *events.Announcer
	Search    *search.Coordinator
	Log       *zap.Logger
	now       func() time.Time
}

func NewExaminationUsecase(
	apiClient contracts.PosyanduAPIClient,
	entityCache contracts.EntityCache,
	announcer *events.Announcer,
	searchCoordinator *search.Coordinator,
	logger *zap.Logger,
) contracts.ExaminationUsecase {
	return &examinationUsecase{
		ApiClient: apiClient,
		Cache:     entityCache,
		Announcer: announcer,
		Search:    searchCoordinator,
		Log:       logger,
		now:       time.Now,
	}
}

// List returns examinations with their derived indicators. Missing patient names are
// filled from the patient list when it can be loaded.
func (uc *examinationUsecase) List(ctx context.Context, query *requests.SearchQuery) ([]responses.Examination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("examinationUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Q),
	)

	var (
		examinations []models.Examination
		err          error
	)
	if q := strings.TrimSpace(query.Q); q != "" {
		err = uc.Search.Run(ctx, constvars.ResourceExamination, func(ctx context.Context) error {
			return uc.ApiClient.Get(ctx, constvars.RemotePathExaminationsSearch, url.Values{constvars.QueryParamQ: {q}}, &examinations)
		})
	} else {
		examinations, err = uc.all(ctx)
	}
	if err != nil {
		uc.Log.Error("examinationUsecase.List error fetching examinations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	names := make(map[string]string)
	if needsPatientNames(examinations) {
		patients, err := uc.patients(ctx)
		if err != nil {
			uc.Log.Warn("examinationUsecase.List cannot load patient names",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		for _, patient := range patients {
			names[patient.ID.String()] = patient.Name
		}
	}

	enriched := make([]responses.Examination, 0, len(examinations))
	for _, exam := range examinations {
		if exam.PatientName == "" {
			exam.PatientName = names[exam.PatientID.String()]
		}
		enriched = append(enriched, enrich(exam))
	}

	uc.Log.Info("examinationUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(enriched)),
	)
	return enriched, nil
}

func (uc *examinationUsecase) Create(ctx context.Context, request *requests.ExaminationForm) (*responses.Examination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("examinationUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID.String()),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}
	request.NutritionStatus = health.NutritionStatus(request.Weight.Float64, request.Height.Float64)

	exam := new(models.Examination)
	if err := uc.ApiClient.Post(ctx, constvars.RemotePathExaminations, request, exam); err != nil {
		uc.Log.Error("examinationUsecase.Create error calling ApiClient.Post",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceExamination, exam.ID.String())

	uc.Log.Info("examinationUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, exam.ID.String()),
	)
	result := enrich(*exam)
	return &result, nil
}

func (uc *examinationUsecase) Update(ctx context.Context, examinationID string, request *requests.ExaminationForm) (*responses.Examination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("examinationUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, examinationID),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}
	request.NutritionStatus = health.NutritionStatus(request.Weight.Float64, request.Height.Float64)

	exam := new(models.Examination)
	if err := uc.ApiClient.Put(ctx, examinationPath(examinationID), request, exam); err != nil {
		uc.Log.Error("examinationUsecase.Update error calling ApiClient.Put",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, examinationID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceExamination, examinationID)

	uc.Log.Info("examinationUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, examinationID),
	)
	result := enrich(*exam)
	return &result, nil
}

func (uc *examinationUsecase) Delete(ctx context.Context, examinationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("examinationUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, examinationID),
	)

	if err := uc.ApiClient.Delete(ctx, examinationPath(examinationID), nil); err != nil {
		uc.Log.Error("examinationUsecase.Delete error calling ApiClient.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, examinationID),
			zap.Error(err),
		)
		return err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceExamination, examinationID)

	uc.Log.Info("examinationUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, examinationID),
	)
	return nil
}

// Metrics previews the derived indicators while a form is being filled in. It never calls the API.
func (uc *examinationUsecase) Metrics(ctx context.Context, request *requests.MetricsInput) (*health.Metrics, error) {
	metrics := health.Calculate(health.Readings{
		WeightKg:    request.Weight.Float64,
		HeightCm:    request.Height.Float64,
		Systolic:    request.BloodPressureSystolic.Float64,
		Diastolic:   request.BloodPressureDiastolic.Float64,
		BloodSugar:  request.BloodSugar.Float64,
		Cholesterol: request.Cholesterol.Float64,
		UricAcid:    request.UricAcid.Float64,
	})
	return &metrics, nil
}

// MonthlyReport tabulates the examinations of the current month by age bracket.
func (uc *examinationUsecase) MonthlyReport(ctx context.Context) (*report.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("examinationUsecase.MonthlyReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	examinations, err := uc.all(ctx)
	if err != nil {
		uc.Log.Error("examinationUsecase.MonthlyReport error fetching examinations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patients, err := uc.patients(ctx)
	if err != nil {
		uc.Log.Error("examinationUsecase.MonthlyReport error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	monthly := report.Monthly(examinations, patients, uc.now())

	uc.Log.Info("examinationUsecase.MonthlyReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, monthly.Totals.Total),
	)
	return &monthly, nil
}

func (uc *examinationUsecase) all(ctx context.Context) ([]models.Examination, error) {
	var examinations []models.Examination
	if found, err := uc.Cache.GetList(ctx, constvars.ResourceExamination, &examinations); err == nil && found {
		return examinations, nil
	}

	examinations = nil
	if err := uc.ApiClient.Get(ctx, constvars.RemotePathExaminations, nil, &examinations); err != nil {
		return nil, err
	}
	if examinations == nil {
		examinations = []models.Examination{}
	}
	_ = uc.Cache.SetList(ctx, constvars.ResourceExamination, examinations)
	return examinations, nil
}

// patients shares the patient list cache entry with the patient usecase.
func (uc *examinationUsecase) patients(ctx context.Context) ([]models.Patient, error) {
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

func needsPatientNames(examinations []models.Examination) bool {
	for _, exam := range examinations {
		if exam.PatientName == "" {
			return true
		}
	}
	return false
}

func enrich(exam models.Examination) responses.Examination {
	return responses.Examination{
		Examination: exam,
		Metrics: health.Calculate(health.Readings{
			WeightKg:    exam.Weight.Float64,
			HeightCm:    exam.Height.Float64,
			Systolic:    exam.BloodPressureSystolic.Float64,
			Diastolic:   exam.BloodPressureDiastolic.Float64,
			BloodSugar:  exam.BloodSugar.Float64,
			Cholesterol: exam.Cholesterol.Float64,
			UricAcid:    exam.UricAcid.Float64,
		}),
	}
}

func examinationPath(examinationID string) string {
	return constvars.RemotePathExaminations + "/" + url.PathEscape(examinationID)
}
