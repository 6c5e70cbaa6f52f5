package utils

import (
	"context"
	"errors"
	"net/http"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/responses"
	"posyandu-console/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ToCustomError normalizes any error coming out of a usecase into a CustomError.
func ToCustomError(err error) *exceptions.CustomError {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}

	var remoteFailure exceptions.RemoteFailure
	if errors.As(err, &remoteFailure) {
		return exceptions.ErrRemoteRequest(err)
	}

	return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrClientSomethingWrongWithApplication)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	customErr := ToCustomError(err)

	fields := []zap.Field{
		zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
	}
	if customErr.Location != nil {
		fields = append(fields, zap.Any("location", customErr.Location))
	}
	if customErr.StatusCode >= constvars.StatusInternalServerError {
		log.Error(customErr.DevMessage, fields...)
	} else {
		log.Warn(customErr.DevMessage, fields...)
	}

	response := exceptions.CustomError{
		StatusCode:    customErr.StatusCode,
		Success:       false,
		ClientMessage: customErr.ClientMessage,
		Fields:        customErr.Fields,
		RedirectTo:    customErr.RedirectTo,
	}
	if GetEnvString("APP_ENV", constvars.AppEnvDevelopment) != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Location = customErr.Location
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(customErr.StatusCode)
	json.NewEncoder(w).Encode(response)
}
