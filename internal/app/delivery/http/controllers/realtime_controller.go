package controllers

import (
	"net/http"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/realtime"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"

	"go.uber.org/zap"
)

type RealtimeController struct {
	Log *zap.Logger
	Hub *realtime.Hub
}

func NewRealtimeController(logger *zap.Logger, hub *realtime.Hub) *RealtimeController {
	return &RealtimeController{Log: logger, Hub: hub}
}

// Stream upgrades an authenticated tab to the change feed.
func (ctrl *RealtimeController) Stream(w http.ResponseWriter, r *http.Request) {
	session := models.SessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(nil, r.URL.Path))
		return
	}

	// The upgrader has already answered the client when it fails.
	if err := ctrl.Hub.ServeWS(w, r, session); err != nil {
		ctrl.Log.Warn("RealtimeController.Stream upgrade failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
}
