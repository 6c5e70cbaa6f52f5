package controllers

import (
	"fmt"
	"net/http"
	"posyandu-console/internal/app/config"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/ratelimiter"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/dto/responses"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

const loginLimiterGroup = "login"

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	LoginLimiter   *ratelimiter.ResourceLimiter
	InternalConfig *config.InternalConfig
}

func NewAuthController(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	loginLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		LoginLimiter:   loginLimiter,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	request := new(requests.LoginForm)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if ctrl.LoginLimiter != nil {
		out, err := ctrl.LoginLimiter.Apply(r.Context(), ratelimiter.ApplyInput{
			Group:    loginLimiterGroup,
			Resource: request.Email,
			Window:   time.Minute,
			MaxQuota: ctrl.InternalConfig.App.LoginRatePerMinute,
		})
		if err == nil && !out.Allowed {
			utils.LogSecurityEvent(ctrl.Log, "login_throttled", requestID, "medium",
				zap.String(constvars.LoggingEmailKey, strings.ToLower(request.Email)),
				zap.Duration(constvars.LoggingRetryAfterKey, out.RetryAfter),
			)
			w.Header().Set("Retry-After", fmt.Sprint(int(out.RetryAfter.Seconds())+1))
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}
	}

	login, token, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie(token, time.Duration(ctrl.InternalConfig.JWT.ExpTimeInHour)*time.Hour))
	utils.LogBusinessEvent(ctrl.Log, "user_logged_in", requestID,
		zap.String(constvars.LoggingUserIDKey, login.UserID),
		zap.String(constvars.LoggingRoleKey, login.Role),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, login)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	session := models.SessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(nil, r.URL.Path))
		return
	}

	if err := ctrl.AuthUsecase.Logout(r.Context(), session); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie("", -1))
	utils.LogBusinessEvent(ctrl.Log, "user_logged_out", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	session := models.SessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(nil, r.URL.Path))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionSuccessMessage, responses.Session{
		UserID:    session.UserID,
		Name:      session.Name,
		Email:     session.Email,
		Role:      session.Role.String(),
		IsAdmin:   session.Role.IsAdmin(),
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// sessionCookie builds the session cookie. A negative ttl deletes it.
func (ctrl *AuthController) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     ctrl.InternalConfig.Session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		return cookie
	}
	cookie.MaxAge = int(ttl.Seconds())
	return cookie
}
