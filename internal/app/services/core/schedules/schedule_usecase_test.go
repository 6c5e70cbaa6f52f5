package schedules

import (
	"context"
	"errors"
	"net/url"
	"posyandu-console/internal/app/services/shared/cache"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/app/services/shared/events/eventstest"
	"posyandu-console/internal/app/services/shared/posyanduapi/posyanduapitest"
	"posyandu-console/internal/app/services/shared/redis/redistest"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const schedulesJSON = `[
	{"id":1,"patient_id":4,"patient_name":"Siti","patient_address":"Jl. Melati","visit_date":"2025-09-16T00:00:00.000Z","visit_time":"09:00","status":"Terjadwal"},
	{"id":2,"patient_id":5,"patient_name":"Budi","visit_date":"2025-09-20","visit_time":"10:00","status":"Selesai"},
	{"id":3,"patient_id":6,"patient_name":"Sari","visit_date":"2025-10-02","visit_time":"08:00","status":"Terjadwal"}
]`

type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	unlocked []string
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held == nil {
		f.held = map[string]bool{}
	}
	if f.held[key] {
		return false, "", nil
	}
	f.held[key] = true
	return true, "token-" + key, nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.held, key)
	f.unlocked = append(f.unlocked, key)
	return nil
}

type fixture struct {
	uc       *scheduleUsecase
	client   *posyanduapitest.MockClient
	repo     *redistest.MemoryRepository
	locker   *fakeLocker
	recorder *eventstest.Recorder
}

func newFixture() *fixture {
	f := &fixture{
		client:   &posyanduapitest.MockClient{},
		repo:     redistest.NewMemoryRepository(),
		locker:   &fakeLocker{},
		recorder: &eventstest.Recorder{},
	}
	entityCache := cache.NewEntityCache(f.repo, time.Minute, nil, zap.NewNop())
	f.uc = NewScheduleUsecase(
		f.client,
		entityCache,
		f.locker,
		events.NewAnnouncer(entityCache, f.recorder, zap.NewNop()),
		30*time.Second,
		zap.NewNop(),
	).(*scheduleUsecase)
	f.uc.now = func() time.Time { return time.Date(2025, time.September, 15, 10, 0, 0, 0, time.Local) }
	return f
}

func (f *fixture) expectList() {
	f.client.On("Get", mock.Anything, constvars.RemotePathSchedules, url.Values(nil), mock.Anything).
		Run(posyanduapitest.Respond(3, schedulesJSON)).Return(nil).Once()
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func weeklyForm() *requests.ScheduleForm {
	return &requests.ScheduleForm{
		PatientID: "4",
		VisitDate: "2025-09-22",
		VisitTime: "09:00",
		Notes:     "kontrol tensi",
		Weekly:    true,
	}
}

func TestScheduleUsecaseList(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		f := newFixture()
		f.expectList()

		schedules, err := f.uc.List(context.Background(), &requests.ScheduleListQuery{Status: constvars.VisitStatusScheduled})
		require.NoError(t, err)
		require.Len(t, schedules, 2)
		assert.Equal(t, "Siti", schedules[0].PatientName)
	})

	t.Run("date filter drops the query", func(t *testing.T) {
		f := newFixture()
		f.expectList()

		schedules, err := f.uc.List(context.Background(), &requests.ScheduleListQuery{Q: "siti", Date: "2025-09-20"})
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, "Budi", schedules[0].PatientName)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		f := newFixture()
		f.expectList()

		_, err := f.uc.List(context.Background(), &requests.ScheduleListQuery{})
		require.NoError(t, err)
		schedules, err := f.uc.List(context.Background(), &requests.ScheduleListQuery{Q: "melati"})
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		f.client.AssertNumberOfCalls(t, "Get", 1)
	})
}

func TestScheduleUsecaseCalendar(t *testing.T) {
	t.Run("defaults to the current month", func(t *testing.T) {
		f := newFixture()
		f.expectList()

		result, err := f.uc.Calendar(context.Background(), &requests.CalendarQuery{})
		require.NoError(t, err)
		assert.Equal(t, 2025, result.Calendar.Year)
		assert.Equal(t, 9, result.Calendar.Month)
		assert.Equal(t, 8, result.Previous.Month)
		assert.Equal(t, 10, result.Next.Month)
		assert.Len(t, result.Schedules, 3)
		require.Len(t, result.Upcoming, 2)
		assert.Equal(t, "Siti", result.Upcoming[0].PatientName)
	})

	t.Run("navigation wraps the year", func(t *testing.T) {
		f := newFixture()
		f.expectList()

		result, err := f.uc.Calendar(context.Background(), &requests.CalendarQuery{Year: 2025, Month: 12})
		require.NoError(t, err)
		assert.Equal(t, 2026, result.Next.Year)
		assert.Equal(t, 1, result.Next.Month)
	})

	t.Run("selected date clears the query", func(t *testing.T) {
		f := newFixture()
		f.expectList()

		result, err := f.uc.Calendar(context.Background(), &requests.CalendarQuery{Q: "sari", Date: "2025-09-16"})
		require.NoError(t, err)
		assert.Empty(t, result.Filter.Query)
		assert.Equal(t, "2025-09-16", result.Filter.Date)
		require.Len(t, result.Schedules, 1)
		assert.Equal(t, "Siti", result.Schedules[0].PatientName)
	})

	t.Run("invalid month", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Calendar(context.Background(), &requests.CalendarQuery{Year: 2025, Month: 13})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		f.client.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestScheduleUsecaseCreate(t *testing.T) {
	t.Run("single visit fills defaults", func(t *testing.T) {
		f := newFixture()
		var sent *schedulePayload
		f.client.On("Post", mock.Anything, constvars.RemotePathSchedules, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(2).(*schedulePayload)
				posyanduapitest.Respond(3, `{"id":10,"patient_id":4,"status":"Terjadwal"}`)(args)
			}).Return(nil).Once()

		form := weeklyForm()
		form.Weekly = false
		form.PetugasID = "2"
		schedules, err := f.uc.Create(context.Background(), form)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		require.NotNil(t, sent)
		assert.Equal(t, int64(4), sent.PatientID)
		assert.Equal(t, constvars.VisitTypeHome, sent.VisitType)
		assert.Equal(t, constvars.VisitStatusScheduled, sent.Status)
		assert.Equal(t, constvars.DefaultExaminationType, sent.ExaminationType)
		require.NotNil(t, sent.PetugasID)
		assert.Equal(t, int64(2), *sent.PetugasID)
		assert.Len(t, f.recorder.Events(), 1)
	})

	t.Run("empty petugas is sent as null", func(t *testing.T) {
		payload, err := newSchedulePayload(&requests.ScheduleForm{PatientID: "4", VisitDate: "2025-09-22", VisitTime: "09:00", Notes: "x"})
		require.NoError(t, err)
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"petugas_id":null`)
	})

	t.Run("invalid form never reaches the API", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Create(context.Background(), &requests.ScheduleForm{})
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusOf(t, err))
		f.client.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weekly series", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.repo.Set(context.Background(), cache.ListKey(constvars.ResourceSchedule), []int{}, 0))
		var sent weeklyPayload
		f.client.On("Post", mock.Anything, constvars.RemotePathSchedulesWeekly, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(2).(weeklyPayload)
				posyanduapitest.Respond(3, `{"message":"ok","schedules":[{"id":1},{"id":2},{"id":3},{"id":4}]}`)(args)
			}).Return(nil).Once()

		schedules, err := f.uc.Create(context.Background(), weeklyForm())
		require.NoError(t, err)
		assert.Len(t, schedules, constvars.WeeklyScheduleOccurrences)
		assert.Equal(t, "2025-09-22", sent.StartDate)
		assert.False(t, f.repo.Has(cache.ListKey(constvars.ResourceSchedule)))
		assert.Len(t, f.recorder.Events(), 1)
		assert.Equal(t, []string{"lock:weekly-schedule:4:2025-09-22"}, f.locker.unlocked)
	})

	t.Run("weekly series already in progress", func(t *testing.T) {
		f := newFixture()
		_, _, err := f.locker.TryLock(context.Background(), "lock:weekly-schedule:4:2025-09-22", time.Minute)
		require.NoError(t, err)

		_, err = f.uc.Create(context.Background(), weeklyForm())
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		f.client.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weekly series incomplete", func(t *testing.T) {
		f := newFixture()
		f.client.On("Post", mock.Anything, constvars.RemotePathSchedulesWeekly, mock.Anything, mock.Anything).
			Run(posyanduapitest.Respond(3, `{"schedules":[{"id":1},{"id":2},{"id":3}]}`)).Return(nil).Once()

		_, err := f.uc.Create(context.Background(), weeklyForm())
		assert.Equal(t, constvars.StatusBadGateway, statusOf(t, err))
		assert.Len(t, f.recorder.Events(), 1)
		assert.Len(t, f.locker.unlocked, 1)
	})
}

func TestScheduleUsecaseComplete(t *testing.T) {
	t.Run("scheduled visit", func(t *testing.T) {
		f := newFixture()
		f.expectList()
		var sent statusPayload
		f.client.On("Put", mock.Anything, "/api/jadwal-pemeriksaan/1/status", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(2).(statusPayload)
				posyanduapitest.Respond(3, `{"schedule":{"id":1,"status":"Selesai"}}`)(args)
			}).Return(nil).Once()

		schedule, err := f.uc.Complete(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, constvars.VisitStatusCompleted, sent.Status)
		assert.Equal(t, constvars.VisitStatusCompleted, schedule.Status)
		assert.Len(t, f.recorder.Events(), 1)
	})

	t.Run("already completed", func(t *testing.T) {
		f := newFixture()
		f.expectList()

		_, err := f.uc.Complete(context.Background(), "2")
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		f.client.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown visit", func(t *testing.T) {
		f := newFixture()
		f.expectList()

		_, err := f.uc.Complete(context.Background(), "99")
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})
}

func TestScheduleUsecaseDelete(t *testing.T) {
	f := newFixture()
	f.client.On("Delete", mock.Anything, "/api/jadwal-pemeriksaan/3", nil).Return(nil).Once()

	require.NoError(t, f.uc.Delete(context.Background(), "3"))
	require.Len(t, f.recorder.Events(), 1)
	assert.Equal(t, "3", f.recorder.Events()[0].EntityID)
}
