package middlewares

import (
	"errors"
	"net/http"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/posyanduapi"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the session cookie and binds the session and its remote
// cookies to the request context. Without a valid session the client is told to go
// to the login page and come back to the requested path.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		cookie, err := r.Cookie(m.InternalConfig.Session.CookieName)
		if err != nil || cookie.Value == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionMissing(err, r.URL.Path))
			return
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), cookie.Value)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate session rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			var customErr *exceptions.CustomError
			if errors.As(err, &customErr) && customErr.StatusCode != constvars.StatusUnauthorized {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionTokenInvalid(err, r.URL.Path))
			return
		}

		ctx := models.WithSession(r.Context(), session)
		ctx = posyanduapi.WithCookies(ctx, session.RemoteCookies)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := models.SessionFromContext(r.Context())
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionMissing(nil, r.URL.Path))
			return
		}
		if !session.Role.IsAdmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminOnly(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
