package posyanduapi

import (
	"bytes"
	"fmt"
	"posyandu-console/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// RequestError is returned for every failed call to the remote API.
// StatusCode is zero when the request never got a response.
type RequestError struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("posyandu api: %s", e.Message)
	}
	return fmt.Sprintf("posyandu api: status %d: %s", e.StatusCode, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.cause
}

func (e *RequestError) RemoteStatus() int {
	return e.StatusCode
}

func (e *RequestError) RemoteMessage() string {
	return e.Message
}

type errorBody struct {
	Message string `json:"message"`
}

// newStatusError reads the server message from a non-2xx body.
// An unparseable body reports a network error; a body without a message reports the status.
func newStatusError(statusCode int, body []byte) *RequestError {
	var payload errorBody
	if err := json.Unmarshal(bytes.TrimSpace(body), &payload); err != nil {
		return &RequestError{StatusCode: statusCode, Message: constvars.RemoteErrorNetwork, cause: err}
	}
	if payload.Message == "" {
		return &RequestError{StatusCode: statusCode, Message: fmt.Sprintf(constvars.RemoteErrorHTTPStatusFormat, statusCode)}
	}
	return &RequestError{StatusCode: statusCode, Message: payload.Message}
}

func newTransportError(err error) *RequestError {
	message := constvars.RemoteErrorDefault
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &RequestError{Message: message, cause: err}
}
