package controllers

import (
	"context"
	"net/http"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status  string `json:"status"`
	Redis   string `json:"redis"`
	Clients int    `json:"realtime_clients"`
}

type HealthController struct {
	Log       *zap.Logger
	Redis     contracts.RedisRepository
	ClientsFn func() int
}

func NewHealthController(logger *zap.Logger, redis contracts.RedisRepository, clientsFn func() int) *HealthController {
	return &HealthController{Log: logger, Redis: redis, ClientsFn: clientsFn}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Redis: "ok"}
	if ctrl.ClientsFn != nil {
		resp.Clients = ctrl.ClientsFn()
	}

	code := constvars.StatusOK
	if err := ctrl.Redis.Ping(ctx); err != nil {
		ctrl.Log.Warn("HealthController.Check redis unreachable", zap.Error(err))
		resp.Status = "degraded"
		resp.Redis = err.Error()
		code = constvars.StatusServiceUnavailable
	}
	utils.BuildSuccessResponse(w, code, resp.Status, resp)
}
