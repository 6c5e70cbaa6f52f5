package dashboard

import (
	"context"
	"errors"
	"net/url"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/posyanduapi"
	"posyandu-console/internal/app/services/shared/posyanduapi/posyanduapitest"
	"posyandu-console/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const statsJSON = `{
	"ageGroups":{"Balita":"12","Remaja":4,"Dewasa":30,"Lansia":9},
	"healthConditions":{"hypertension":7,"diabetes":"3","totalExaminations":55},
	"monthlyTrends":[
		{"month":"2025-09","total_examinations":20,"completed_examinations":"18"},
		{"month":"2025-08","total_examinations":"15","completed_examinations":15},
		{"month":"bulan lalu","total_examinations":1}
	]
}`

func TestDashboardUsecaseStats(t *testing.T) {
	client := &posyanduapitest.MockClient{}
	client.On("Get", mock.Anything, constvars.RemotePathDashboardStats, url.Values(nil), mock.Anything).
		Run(posyanduapitest.Respond(3, statsJSON)).Return(nil).Once()
	uc := NewDashboardUsecase(client, zap.NewNop())

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.FlexibleInt(12), stats.AgeGroups.Balita)
	assert.Equal(t, models.FlexibleInt(3), stats.HealthConditions.Diabetes)
	assert.Equal(t, models.FlexibleInt(0), stats.HealthConditions.VisionProblems)

	require.Len(t, stats.MonthlyTrends, 3)
	assert.Equal(t, "bulan lalu", stats.MonthlyTrends[0].Label)
	assert.Equal(t, "Agustus 2025", stats.MonthlyTrends[1].Label)
	assert.Equal(t, "September 2025", stats.MonthlyTrends[2].Label)
	assert.Equal(t, models.FlexibleInt(18), stats.MonthlyTrends[2].CompletedExaminations)
}

func TestDashboardUsecaseStatsError(t *testing.T) {
	client := &posyanduapitest.MockClient{}
	remoteErr := &posyanduapi.RequestError{StatusCode: 500, Message: "HTTP error! status: 500"}
	client.On("Get", mock.Anything, constvars.RemotePathDashboardStats, url.Values(nil), mock.Anything).Return(remoteErr).Once()
	uc := NewDashboardUsecase(client, zap.NewNop())

	_, err := uc.Stats(context.Background())
	assert.True(t, errors.Is(err, remoteErr))
}
