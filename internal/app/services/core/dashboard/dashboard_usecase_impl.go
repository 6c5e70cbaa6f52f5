package dashboard

import (
	"context"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dates"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	ApiClient contracts.PosyanduAPIClient
	Log       *zap.Logger
}

func NewDashboardUsecase(apiClient contracts.PosyanduAPIClient, logger *zap.Logger) contracts.DashboardUsecase {
	return &dashboardUsecase{ApiClient: apiClient, Log: logger}
}

// Stats passes the server-side aggregates through. The trend series arrives newest
// first and is returned oldest first with an Indonesian month label on each point.
func (uc *dashboardUsecase) Stats(ctx context.Context) (*models.DashboardStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.Stats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityKey, constvars.ResourceDashboard),
	)

	stats := new(models.DashboardStats)
	if err := uc.ApiClient.Get(ctx, constvars.RemotePathDashboardStats, nil, stats); err != nil {
		uc.Log.Error("dashboardUsecase.Stats error calling ApiClient.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	trends := make([]models.MonthlyTrend, 0, len(stats.MonthlyTrends))
	for i := len(stats.MonthlyTrends) - 1; i >= 0; i-- {
		trend := stats.MonthlyTrends[i]
		if trend.Label == "" {
			trend.Label = trendLabel(trend.Month)
		}
		trends = append(trends, trend)
	}
	stats.MonthlyTrends = trends

	uc.Log.Info("dashboardUsecase.Stats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(trends)),
	)
	return stats, nil
}

// trendLabel turns "2025-09" into "September 2025". Unparseable keys are returned unchanged.
func trendLabel(month string) string {
	parts := strings.SplitN(month, "-", 3)
	if len(parts) < 2 {
		return month
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return month
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return month
	}
	return dates.MonthLabel(year, time.Month(m))
}
