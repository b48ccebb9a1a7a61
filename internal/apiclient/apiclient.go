package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/indigo-rhapsody/indigo-admin/internal/correlation"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/retry"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultProductsLimit = 100
)

// Session is the part of the session store the client needs: the token to
// send and the ability to drop it when the backend rejects it.
type Session interface {
	Token() string
	Clear() error
}

// APIClient handles all communication with the backend API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
	Timeout    time.Duration

	// PaymentsRetry is applied to the payments list fetch only.
	PaymentsRetry retry.Policy
	ProductsLimit int
}

// New creates a client for the backend at baseURL.
func New(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{},
		Timeout:    timeout,
		PaymentsRetry: retry.Policy{
			MaxAttempts: 3,
			Backoff:     time.Second,
		},
		ProductsLimit: DefaultProductsLimit,
	}
}

// Request describes one backend call. Body is JSON encoded when non-nil;
// Headers are applied last and override the defaults.
type Request struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Call is the single path to the backend. It returns the response body
// unmodified on 2xx and a classified *Error otherwise. When the backend
// rejects the session, sess is cleared before the KindAuth error is returned.
func (c *APIClient) Call(ctx context.Context, sess Session, endpoint string, req Request) (json.RawMessage, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		jsonBody, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if sess != nil {
		if token := sess.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if id, ok := correlation.ID(ctx); ok {
		httpReq.Header.Set(correlation.Header, id)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	group := endpointGroup(endpoint)
	start := time.Now()
	data, status, err := c.send(httpReq)
	backendRequestDuration.WithLabelValues(group).Observe(time.Since(start).Seconds())

	if err != nil {
		classified := classifyTransport(err)
		c.record(ctx, group, method, endpoint, classified)
		return nil, classified
	}

	if status < 200 || status >= 300 {
		message := errorMessage(data, status)
		if isAuthFailure(status, message) {
			if sess != nil {
				if clearErr := sess.Clear(); clearErr != nil {
					logger.Log.ErrorContext(ctx, "clearing session after auth failure", "error", clearErr)
				}
			}
			authErr := &Error{Kind: KindAuth, Message: message, StatusCode: status}
			c.record(ctx, group, method, endpoint, authErr)
			return nil, authErr
		}
		appErr := &Error{Kind: KindApplication, Message: message, StatusCode: status}
		c.record(ctx, group, method, endpoint, appErr)
		return nil, appErr
	}

	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("null")
	} else if !json.Valid(data) {
		appErr := &Error{Kind: KindApplication, Message: "Invalid response from server.", StatusCode: status}
		c.record(ctx, group, method, endpoint, appErr)
		return nil, appErr
	}

	backendRequestsTotal.WithLabelValues(group, method, "ok").Inc()
	return json.RawMessage(data), nil
}

func (c *APIClient) send(req *http.Request) ([]byte, int, error) {
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return data, resp.StatusCode, nil
}

func (c *APIClient) record(ctx context.Context, group, method, endpoint string, e *Error) {
	backendRequestsTotal.WithLabelValues(group, method, e.Kind.String()).Inc()
	logger.Log.WarnContext(ctx, "backend call failed",
		"method", method,
		"endpoint", endpoint,
		"kind", e.Kind.String(),
		"status", e.StatusCode,
		"message", e.Message,
	)
}

// fetch performs a call and decodes the body into T.
func fetch[T any](ctx context.Context, c *APIClient, sess Session, endpoint string, req Request, fallback string) (T, error) {
	var out T
	raw, err := c.Call(ctx, sess, endpoint, req)
	if err != nil {
		return out, withFallback(err, fallback)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &Error{Kind: KindApplication, Message: fallback, Err: err}
	}
	return out, nil
}

// exec performs a call whose response body is ignored.
func (c *APIClient) exec(ctx context.Context, sess Session, endpoint string, req Request, fallback string) error {
	_, err := c.Call(ctx, sess, endpoint, req)
	return withFallback(err, fallback)
}

// fetchOne decodes a single record that the backend returns either bare or
// wrapped in an object under key.
func fetchOne[T any](ctx context.Context, c *APIClient, sess Session, endpoint, fallback, key string) (T, error) {
	var out T
	raw, err := c.Call(ctx, sess, endpoint, Request{})
	if err != nil {
		return out, withFallback(err, fallback)
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if inner, ok := envelope[key]; ok {
			raw = inner
		} else if inner, ok := envelope["data"]; ok {
			raw = inner
		}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &Error{Kind: KindApplication, Message: fallback, Err: err}
	}
	return out, nil
}

// fetchList decodes a list response. The backend answers either with a bare
// array or with an object holding the array under one of keys.
func fetchList[T any](ctx context.Context, c *APIClient, sess Session, endpoint string, fallback string, keys ...string) ([]T, error) {
	raw, err := c.Call(ctx, sess, endpoint, Request{})
	if err != nil {
		return nil, withFallback(err, fallback)
	}
	items, err := decodeList[T](raw, keys...)
	if err != nil {
		return nil, &Error{Kind: KindApplication, Message: fallback, Err: err}
	}
	return items, nil
}

func decodeList[T any](raw json.RawMessage, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	candidates := append([]string{}, keys...)
	for _, key := range append(candidates, "data") {
		if inner, ok := envelope[key]; ok {
			return decodeList[T](inner, keys...)
		}
	}
	return nil, fmt.Errorf("response has none of the keys %v", keys)
}

func escape(id string) string {
	return url.PathEscape(id)
}
