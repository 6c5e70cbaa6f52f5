package auth

import (
	"context"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/app/services/shared/posyanduapi"
	"posyandu-console/internal/app/services/shared/search"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/dto/responses"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	ApiClient     contracts.PosyanduAPIClient
	SessionStore  contracts.SessionStore
	TokenManager  contracts.SessionTokenManager
	Search        *search.Coordinator
	Publisher     contracts.EventPublisher
	AdminRoleCode string
	SessionTTL    time.Duration
	Log           *zap.Logger
	now           func() time.Time
}

func NewAuthUsecase(
	apiClient contracts.PosyanduAPIClient,
	sessionStore contracts.SessionStore,
	tokenManager contracts.SessionTokenManager,
	searchCoordinator *search.Coordinator,
	publisher contracts.EventPublisher,
	adminRoleCode string,
	sessionTTL time.Duration,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		ApiClient:     apiClient,
		SessionStore:  sessionStore,
		TokenManager:  tokenManager,
		Search:        searchCoordinator,
		Publisher:     publisher,
		AdminRoleCode: adminRoleCode,
		SessionTTL:    sessionTTL,
		Log:           logger,
		now:           time.Now,
	}
}

// Login authenticates against the remote API and opens a console session holding the
// remote cookies. It returns the signed token for the session cookie.
func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginForm) (*responses.Login, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.Email = strings.TrimSpace(request.Email)
	if fields := utils.ValidateForm(request); fields != nil {
		return nil, "", exceptions.ErrFormValidation(fields)
	}

	remoteUser := new(models.RemoteUser)
	cookies, err := uc.ApiClient.PostCapturingCookies(ctx, constvars.RemotePathLogin, request, remoteUser)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling ApiClient.PostCapturingCookies",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}
	if remoteUser.ID == "" {
		uc.Log.Warn("authUsecase.Login remote response without user id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, "", exceptions.ErrLoginFailed(nil)
	}

	session := &models.Session{
		SessionID:     uuid.NewString(),
		UserID:        remoteUser.ID.String(),
		Name:          remoteUser.Name,
		Email:         remoteUser.Email,
		Role:          models.ResolveRole(remoteUser.Role.String(), uc.AdminRoleCode),
		RemoteCookies: cookies,
		ExpiresAt:     uc.now().Add(uc.SessionTTL),
	}
	if err := uc.SessionStore.Save(ctx, session, uc.SessionTTL); err != nil {
		return nil, "", err
	}

	token, err := uc.TokenManager.Sign(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling TokenManager.Sign",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		_ = uc.SessionStore.Delete(ctx, session.SessionID)
		return nil, "", exceptions.ErrSessionTokenGenerate(err)
	}

	redirectTo := constvars.LoginRedirectUser
	if session.Role.IsAdmin() {
		redirectTo = constvars.LoginRedirectAdmin
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, session.Role.String()),
	)
	return &responses.Login{
		UserID:     session.UserID,
		Name:       session.Name,
		Email:      session.Email,
		Role:       session.Role.String(),
		IsAdmin:    session.Role.IsAdmin(),
		RedirectTo: redirectTo,
	}, token, nil
}

// Logout always ends the local session. The remote logout is best effort.
func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	remoteCtx := posyanduapi.WithCookies(ctx, session.RemoteCookies)
	if err := uc.ApiClient.Post(remoteCtx, constvars.RemotePathLogout, nil, nil); err != nil {
		uc.Log.Warn("authUsecase.Logout remote logout failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if err := uc.SessionStore.Delete(ctx, session.SessionID); err != nil {
		uc.Log.Error("authUsecase.Logout error calling SessionStore.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.Search.ForgetSession(session.SessionID)

	if err := uc.Publisher.Publish(ctx, events.SessionLogout(session.UserID, session.SessionID)); err != nil {
		uc.Log.Error("authUsecase.Logout error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}

// ResolveSession maps a session cookie value onto the stored session.
func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	claims, err := uc.TokenManager.Parse(ctx, token)
	if err != nil {
		return nil, exceptions.ErrSessionTokenInvalid(err, "")
	}

	session, err := uc.SessionStore.Find(ctx, claims.SessionID)
	if err != nil {
		uc.Log.Debug("authUsecase.ResolveSession session not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, claims.SessionID),
			zap.Error(err),
		)
		return nil, err
	}
	if session.SessionID != claims.SessionID || session.UserID != claims.UserID || session.IsExpired(uc.now()) {
		return nil, exceptions.ErrSessionTokenInvalid(nil, "")
	}
	return session, nil
}
