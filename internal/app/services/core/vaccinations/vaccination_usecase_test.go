package vaccinations

import (
	"context"
	"errors"
	"net/url"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/cache"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/app/services/shared/events/eventstest"
	"posyandu-console/internal/app/services/shared/posyanduapi/posyanduapitest"
	"posyandu-console/internal/app/services/shared/redis/redistest"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const vaccinationsJSON = `[
	{"id":1,"title":"Imunisasi Polio","location":"Balai RW 03","vaccine_type":"Polio","max_participants":"50","status":"active"},
	{"id":2,"title":"Vaksin Influenza Lansia","location":"Puskesmas","vaccine_type":"Influenza","max_participants":30,"status":"completed"}
]`

func newUsecase(client *posyanduapitest.MockClient) (*vaccinationUsecase, *eventstest.Recorder) {
	recorder := &eventstest.Recorder{}
	entityCache := cache.NewEntityCache(redistest.NewMemoryRepository(), time.Minute, nil, zap.NewNop())
	uc := NewVaccinationUsecase(
		client,
		entityCache,
		events.NewAnnouncer(entityCache, recorder, zap.NewNop()),
		zap.NewNop(),
	).(*vaccinationUsecase)
	return uc, recorder
}

func TestVaccinationUsecaseList(t *testing.T) {
	tests := []struct {
		name  string
		query requests.VaccinationListQuery
		want  []models.FlexibleID
	}{
		{name: "everything", query: requests.VaccinationListQuery{}, want: []models.FlexibleID{"1", "2"}},
		{name: "all status", query: requests.VaccinationListQuery{Status: "all"}, want: []models.FlexibleID{"1", "2"}},
		{name: "by status", query: requests.VaccinationListQuery{Status: constvars.VaccinationStatusActive}, want: []models.FlexibleID{"1"}},
		{name: "by location", query: requests.VaccinationListQuery{Q: "puskesmas"}, want: []models.FlexibleID{"2"}},
		{name: "by vaccine type", query: requests.VaccinationListQuery{Q: "POLIO"}, want: []models.FlexibleID{"1"}},
		{name: "no match", query: requests.VaccinationListQuery{Q: "campak"}, want: []models.FlexibleID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &posyanduapitest.MockClient{}
			uc, _ := newUsecase(client)
			client.On("Get", mock.Anything, constvars.RemotePathVaccinations, url.Values(nil), mock.Anything).
				Run(posyanduapitest.Respond(3, vaccinationsJSON)).Return(nil).Once()

			vaccinations, err := uc.List(context.Background(), &tt.query)
			require.NoError(t, err)
			ids := make([]models.FlexibleID, 0, len(vaccinations))
			for _, v := range vaccinations {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestVaccinationUsecaseCreate(t *testing.T) {
	t.Run("sends camelCase payload", func(t *testing.T) {
		client := &posyanduapitest.MockClient{}
		uc, recorder := newUsecase(client)
		var sent models.VaccinationPayload
		client.On("Post", mock.Anything, constvars.RemotePathVaccinations, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(2).(models.VaccinationPayload)
				posyanduapitest.Respond(3, `{"id":7,"title":"Campak","status":"active"}`)(args)
			}).Return(nil).Once()

		vaccination, err := uc.Create(context.Background(), &requests.VaccinationForm{
			Title:           " Campak ",
			Date:            "2025-10-01",
			Location:        "Balai RW 03",
			VaccineType:     "Campak",
			MaxParticipants: 40,
		})
		require.NoError(t, err)
		assert.Equal(t, models.FlexibleID("7"), vaccination.ID)
		assert.Equal(t, "Campak", sent.Title)
		assert.Equal(t, constvars.VaccinationStatusActive, sent.Status)

		raw, err := json.Marshal(sent)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"vaccineType":"Campak"`)
		assert.Contains(t, string(raw), `"maxParticipants":40`)
		assert.Len(t, recorder.Events(), 1)
	})

	t.Run("invalid form", func(t *testing.T) {
		client := &posyanduapitest.MockClient{}
		uc, _ := newUsecase(client)

		_, err := uc.Create(context.Background(), &requests.VaccinationForm{Title: "Campak"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Contains(t, customErr.Fields, "max_participants")
		client.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVaccinationUsecaseRegister(t *testing.T) {
	t.Run("numeric user id", func(t *testing.T) {
		client := &posyanduapitest.MockClient{}
		uc, recorder := newUsecase(client)
		client.On("Post", mock.Anything, "/api/vaccinations/1/register", models.VaccinationRegistration{UserID: 12}, nil).
			Return(nil).Once()

		require.NoError(t, uc.Register(context.Background(), "1", &requests.RegistrationForm{PatientID: "12"}))
		client.AssertExpectations(t)
		assert.Len(t, recorder.Events(), 1)
	})

	t.Run("non numeric patient", func(t *testing.T) {
		client := &posyanduapitest.MockClient{}
		uc, _ := newUsecase(client)

		err := uc.Register(context.Background(), "1", &requests.RegistrationForm{PatientID: "abc"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		client.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVaccinationUsecaseDelete(t *testing.T) {
	client := &posyanduapitest.MockClient{}
	uc, recorder := newUsecase(client)
	client.On("Delete", mock.Anything, "/api/vaccinations/2", nil).Return(nil).Once()

	require.NoError(t, uc.Delete(context.Background(), "2"))
	require.Len(t, recorder.Events(), 1)
	assert.Equal(t, constvars.ResourceVaccination, recorder.Events()[0].Entity)
}
