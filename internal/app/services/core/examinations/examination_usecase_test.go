package examinations

import (
	"context"
	"net/url"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/cache"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/app/services/shared/events/eventstest"
	"posyandu-console/internal/app/services/shared/posyanduapi/posyanduapitest"
	"posyandu-console/internal/app/services/shared/redis/redistest"
	"posyandu-console/internal/app/services/shared/search"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/health"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const examinationsJSON = `[
	{"id":1,"patient_id":4,"exam_date":"2025-09-03","weight":"45","height":"160","blood_pressure_systolic":"130","blood_pressure_diastolic":"85","hypertension":"Ya","is_new_visit":true},
	{"id":2,"patient_id":5,"patient_name":"Budi","exam_date":"2025-08-28","weight":80,"height":170}
]`

const patientsJSON = `[{"id":4,"name":"Siti","birthDate":"1950-01-01"},{"id":5,"name":"Budi","birthDate":"2022-02-01"}]`

func newUsecase(client *posyanduapitest.MockClient) (*examinationUsecase, *eventstest.Recorder) {
	recorder := &eventstest.Recorder{}
	entityCache := cache.NewEntityCache(redistest.NewMemoryRepository(), time.Minute, nil, zap.NewNop())
	uc := NewExaminationUsecase(
		client,
		entityCache,
		events.NewAnnouncer(entityCache, recorder, zap.NewNop()),
		search.NewCoordinator(time.Millisecond),
		zap.NewNop(),
	).(*examinationUsecase)
	uc.now = func() time.Time { return time.Date(2025, time.September, 15, 10, 0, 0, 0, time.Local) }
	return uc, recorder
}

func TestExaminationUsecaseList(t *testing.T) {
	client := &posyanduapitest.MockClient{}
	uc, _ := newUsecase(client)
	client.On("Get", mock.Anything, constvars.RemotePathExaminations, url.Values(nil), mock.Anything).
		Run(posyanduapitest.Respond(3, examinationsJSON)).Return(nil).Once()
	client.On("Get", mock.Anything, constvars.RemotePathPatients, url.Values(nil), mock.Anything).
		Run(posyanduapitest.Respond(3, patientsJSON)).Return(nil).Once()

	exams, err := uc.List(context.Background(), &requests.SearchQuery{})
	require.NoError(t, err)
	require.Len(t, exams, 2)

	assert.Equal(t, "Siti", exams[0].PatientName)
	require.NotNil(t, exams[0].Metrics.BMI)
	assert.Equal(t, 17.6, *exams[0].Metrics.BMI)
	assert.Equal(t, health.NutritionUnderweight, exams[0].Metrics.NutritionStatus)
	assert.True(t, bool(exams[0].Hypertension))
	assert.Equal(t, "Budi", exams[1].PatientName)
	assert.Equal(t, health.NutritionOverweight, exams[1].Metrics.NutritionStatus)
	assert.Empty(t, exams[1].Metrics.BloodPressureStatus)
}

func TestExaminationUsecaseSearch(t *testing.T) {
	client := &posyanduapitest.MockClient{}
	uc, _ := newUsecase(client)
	client.On("Get", mock.Anything, constvars.RemotePathExaminationsSearch, url.Values{"q": {"budi"}}, mock.Anything).
		Run(posyanduapitest.Respond(3, `{"data":[{"id":2,"patient_id":5,"patient_name":"Budi"}]}`)).Return(nil).Once()

	exams, err := uc.List(context.Background(), &requests.SearchQuery{Q: "budi"})
	require.NoError(t, err)
	require.Len(t, exams, 1)
	client.AssertNotCalled(t, "Get", mock.Anything, constvars.RemotePathPatients, mock.Anything, mock.Anything)
}

func TestExaminationUsecaseCreate(t *testing.T) {
	client := &posyanduapitest.MockClient{}
	uc, recorder := newUsecase(client)
	form := &requests.ExaminationForm{
		PatientID:              "4",
		ExamDate:               "2025-09-03",
		Weight:                 models.NewNullFloat(90),
		Height:                 models.NewNullFloat(170),
		BloodPressureSystolic:  models.NewNullFloat(120),
		BloodPressureDiastolic: models.NewNullFloat(80),
		NutritionStatus:        "NORMAL",
	}

	var sent *requests.ExaminationForm
	client.On("Post", mock.Anything, constvars.RemotePathExaminations, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).(*requests.ExaminationForm)
			posyanduapitest.Respond(3, `{"id":10,"patient_id":4,"weight":90,"height":170}`)(args)
		}).
		Return(nil).Once()

	exam, err := uc.Create(context.Background(), form)
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, health.NutritionObese, sent.NutritionStatus)
	assert.Equal(t, models.FlexibleID("10"), exam.ID)
	assert.Equal(t, health.NutritionObese, exam.Metrics.NutritionStatus)
	assert.Len(t, recorder.Events(), 1)

	t.Run("Missing Readings", func(t *testing.T) {
		client := &posyanduapitest.MockClient{}
		uc, _ := newUsecase(client)
		_, err := uc.Update(context.Background(), "10", &requests.ExaminationForm{PatientID: "4"})
		require.Error(t, err)
		client.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExaminationUsecaseMetrics(t *testing.T) {
	uc, _ := newUsecase(&posyanduapitest.MockClient{})
	metrics, err := uc.Metrics(context.Background(), &requests.MetricsInput{
		Weight:      models.NewNullFloat(60),
		Height:      models.NewNullFloat(160),
		Cholesterol: models.NewNullFloat(220),
	})
	require.NoError(t, err)
	require.NotNil(t, metrics.BMI)
	assert.Equal(t, 23.4, *metrics.BMI)
	assert.True(t, metrics.HighCholesterol)
	assert.Empty(t, metrics.UricAcidStatus)
}

func TestExaminationUsecaseMonthlyReport(t *testing.T) {
	client := &posyanduapitest.MockClient{}
	uc, _ := newUsecase(client)
	client.On("Get", mock.Anything, constvars.RemotePathExaminations, url.Values(nil), mock.Anything).
		Run(posyanduapitest.Respond(3, examinationsJSON)).Return(nil).Once()
	client.On("Get", mock.Anything, constvars.RemotePathPatients, url.Values(nil), mock.Anything).
		Run(posyanduapitest.Respond(3, patientsJSON)).Return(nil).Once()

	monthly, err := uc.MonthlyReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2025, monthly.Year)
	assert.Equal(t, 9, monthly.Month)
	assert.Equal(t, 1, monthly.Totals.Total)
	assert.Equal(t, 1, monthly.Totals.NewVisits)
	assert.Equal(t, 1, monthly.Groups[health.AgeBracketLansia].Conditions.Hypertension)
	assert.Equal(t, 1, monthly.Groups[health.AgeBracketLansia].Nutrition.Kurus)
}
