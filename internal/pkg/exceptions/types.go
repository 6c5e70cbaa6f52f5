package exceptions

import (
	"errors"
	"fmt"
	"net/url"
	"posyandu-console/internal/pkg/constvars"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrInvalidQueryParam = func(err error, param string) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCannotParseQueryParam, param))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrRemoteRequest = func(err error) *CustomError {
		statusCode := constvars.StatusBadGateway
		clientMessage := constvars.RemoteErrorDefault
		var failure RemoteFailure
		if errors.As(err, &failure) {
			if passthroughRemoteStatus[failure.RemoteStatus()] {
				statusCode = failure.RemoteStatus()
			}
			if failure.RemoteStatus() != 0 && failure.RemoteMessage() != "" {
				clientMessage = failure.RemoteMessage()
			}
		}
		return WrapWithError(err, statusCode, clientMessage, constvars.ErrDevRemoteRequestFailed)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}

	// Forms
	ErrFormValidation = func(fields map[string]string) *CustomError {
		customErr := WrapWithoutError(constvars.StatusUnprocessableEntity, constvars.ErrClientFormInvalid, constvars.ErrDevFormValidationFailed)
		customErr.Fields = fields
		return customErr
	}

	// Session
	ErrSessionMissing = func(err error, requestedPath string) *CustomError {
		customErr := WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionMissing)
		customErr.RedirectTo = loginRedirect(requestedPath)
		return customErr
	}
	ErrSessionTokenInvalid = func(err error, requestedPath string) *CustomError {
		customErr := WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionTokenInvalid)
		customErr.RedirectTo = loginRedirect(requestedPath)
		return customErr
	}
	ErrSessionTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionTokenGenerate)
	}
	ErrAdminOnly = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientAccessDenied, constvars.ErrDevAdminOnly)
	}
	ErrLoginFailed = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientLoginFailed, constvars.ErrDevLoginResponseWithoutID)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrClientTooManyRequests)
	}

	// Search
	ErrStaleResponse = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientStaleResponse, constvars.ErrDevStaleResponse)
	}
	ErrSearchSuperseded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientStaleResponse, constvars.ErrDevSearchSuperseded)
	}

	// Schedules
	ErrWeeklyScheduleLocked = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientWeeklyScheduleInProgress, constvars.ErrDevWeeklyLockHeld)
	}
	ErrWeeklySchedulePartial = func(got, want int) *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientWeeklySchedulePartial, fmt.Sprintf(constvars.ErrDevWeeklyPartial, got, want))
	}
	ErrStatusTransitionNotAllowed = func(status string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientStatusTransitionNotAllowed, fmt.Sprintf(constvars.ErrDevStatusTransitionNotAllowed, status))
	}

	ErrEntityNotFound = func(resource, id string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientEntityNotFound, fmt.Sprintf(constvars.ErrDevEntityNotFound, resource, id))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// RabbitMQ
	ErrPublishEvent = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishEvent)
	}
)

func loginRedirect(requestedPath string) string {
	if requestedPath == "" {
		return constvars.LoginPagePath
	}
	return fmt.Sprintf("%s?%s=%s", constvars.LoginPagePath, constvars.QueryParamFrom, url.QueryEscape(requestedPath))
}

// RemoteFailure is implemented by errors coming back from the external Posyandu API.
type RemoteFailure interface {
	error
	RemoteStatus() int
	RemoteMessage() string
}

// Remote statuses forwarded to the browser as-is. Everything else becomes 502.
var passthroughRemoteStatus = map[int]bool{
	constvars.StatusBadRequest:          true,
	constvars.StatusUnauthorized:        true,
	constvars.StatusForbidden:           true,
	constvars.StatusNotFound:            true,
	constvars.StatusConflict:            true,
	constvars.StatusUnprocessableEntity: true,
}
