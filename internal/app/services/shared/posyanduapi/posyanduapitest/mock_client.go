// Package posyanduapitest holds a testify mock of the Posyandu API client.
package posyanduapitest

import (
	"context"
	"net/url"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/services/shared/posyanduapi"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

var _ contracts.PosyanduAPIClient = (*MockClient)(nil)

func (m *MockClient) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	args := m.Called(ctx, path, params, out)
	return args.Error(0)
}

func (m *MockClient) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

func (m *MockClient) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

func (m *MockClient) Delete(ctx context.Context, path string, out interface{}) error {
	args := m.Called(ctx, path, out)
	return args.Error(0)
}

func (m *MockClient) PostCapturingCookies(ctx context.Context, path string, body interface{}, out interface{}) ([]string, error) {
	args := m.Called(ctx, path, body, out)
	cookies, _ := args.Get(0).([]string)
	return cookies, args.Error(1)
}

func (m *MockClient) Loading() bool {
	return m.Called().Bool(0)
}

func (m *MockClient) Error() string {
	return m.Called().String(0)
}

func (m *MockClient) ClearError() {
	m.Called()
}

// Respond decodes raw into the out argument at index outArg, the way the real client
// decodes a 2xx body. Use it with mock.Call.Run.
func Respond(outArg int, raw string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		if err := posyanduapi.DecodeBody([]byte(raw), args.Get(outArg)); err != nil {
			panic(err)
		}
	}
}
