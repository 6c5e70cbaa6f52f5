package posyanduapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"posyandu-console/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Observer receives one observation per outgoing request.
type Observer interface {
	ObserveRemoteRequest(method, endpoint string, statusCode int, duration time.Duration)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *zap.Logger
	Observer   Observer

	inFlight  atomic.Int64
	mu        sync.RWMutex
	lastError string
}

func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger, observer Observer) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
		Log:        logger,
		Observer:   observer,
	}
}

func (c *Client) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if encoded := params.Encode(); encoded != "" {
		path = path + "?" + encoded
	}
	_, err := c.do(ctx, constvars.MethodGet, path, nil, out)
	return err
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	_, err := c.do(ctx, constvars.MethodPost, path, body, out)
	return err
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	_, err := c.do(ctx, constvars.MethodPut, path, body, out)
	return err
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	_, err := c.do(ctx, constvars.MethodDelete, path, nil, out)
	return err
}

// PostCapturingCookies posts like Post and returns the name=value pairs of any cookies the API set.
func (c *Client) PostCapturingCookies(ctx context.Context, path string, body interface{}, out interface{}) ([]string, error) {
	resp, err := c.do(ctx, constvars.MethodPost, path, body, out)
	if err != nil {
		return nil, err
	}
	cookies := make([]string, 0, len(resp.Cookies()))
	for _, cookie := range resp.Cookies() {
		cookies = append(cookies, cookie.Name+"="+cookie.Value)
	}
	return cookies, nil
}

// Loading reports whether any request is in flight.
func (c *Client) Loading() bool {
	return c.inFlight.Load() > 0
}

// Error returns the message of the last failed request, or "" once cleared.
func (c *Client) Error() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) ClearError() {
	c.setError("")
}

func (c *Client) setError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = message
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) (*http.Response, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := endpointLabel(path)
	c.Log.Info("posyanduAPIClient.do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)

	c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	c.ClearError()

	start := time.Now()
	resp, raw, err := c.roundTrip(ctx, method, path, body)
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.Observer != nil {
		c.Observer.ObserveRemoteRequest(method, endpoint, statusCode, time.Since(start))
	}

	if err != nil {
		requestErr := newTransportError(err)
		c.setError(requestErr.Message)
		c.Log.Error("posyanduAPIClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, requestErr
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		requestErr := newStatusError(statusCode, raw)
		c.setError(requestErr.Message)
		c.Log.Warn("posyanduAPIClient.do remote API returned an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
			zap.String(constvars.LoggingErrorTypeKey, requestErr.Message),
		)
		return resp, requestErr
	}

	if out != nil {
		if err := DecodeBody(raw, out); err != nil {
			c.setError(constvars.RemoteErrorDefault)
			c.Log.Error("posyanduAPIClient.do error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, endpoint),
				zap.Error(err),
			)
			return resp, err
		}
	}

	c.Log.Info("posyanduAPIClient.do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
	)
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body interface{}) (*http.Response, []byte, error) {
	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok && requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if cookies := CookiesFromContext(ctx); len(cookies) > 0 {
		req.Header.Set(constvars.HeaderCookie, strings.Join(cookies, "; "))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, raw, nil
}

// DecodeBody uses the list envelope rules for slice targets and plain JSON otherwise.
func DecodeBody(raw []byte, out interface{}) error {
	target := reflect.ValueOf(out)
	if target.Kind() == reflect.Ptr && target.Elem().Kind() == reflect.Slice {
		return DecodeList(raw, out)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

var reIDSegment = regexp.MustCompile(`/[0-9a-fA-F-]*[0-9][0-9a-fA-F-]*(/|$)`)

// endpointLabel strips the query and collapses id segments so metrics stay low-cardinality.
func endpointLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	for {
		replaced := reIDSegment.ReplaceAllString(path, "/:id$1")
		if replaced == path {
			return path
		}
		path = replaced
	}
}

type cookiesKey struct{}

// WithCookies binds the remote session cookies of the current console session to ctx.
func WithCookies(ctx context.Context, cookies []string) context.Context {
	if len(cookies) == 0 {
		return ctx
	}
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

func CookiesFromContext(ctx context.Context) []string {
	cookies, _ := ctx.Value(cookiesKey{}).([]string)
	return cookies
}
