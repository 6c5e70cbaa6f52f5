package contracts

import (
	"context"
	"net/url"
)

// PosyanduAPIClient is the single gateway to the external Posyandu REST API.
// Decoded responses are written into out when it is non-nil.
type PosyanduAPIClient interface {
	Get(ctx context.Context, path string, params url.Values, out interface{}) error
	Post(ctx context.Context, path string, body interface{}, out interface{}) error
	Put(ctx context.Context, path string, body interface{}, out interface{}) error
	Delete(ctx context.Context, path string, out interface{}) error
	PostCapturingCookies(ctx context.Context, path string, body interface{}, out interface{}) ([]string, error)
	Loading() bool
	Error() string
	ClearError()
}
