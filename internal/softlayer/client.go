// Package softlayer provides a REST client for the SoftLayer account API.
package softlayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// DefaultEndpoint is the public REST endpoint of the SoftLayer API.
const DefaultEndpoint = "https://api.softlayer.com/rest/v3.1"

// DefaultTimeout is applied when no timeout option is given.
const DefaultTimeout = 30 * time.Second

// Client is a SoftLayer API client authenticated with a username and API key.
type Client struct {
	endpoint   string
	username   string
	apiKey     string
	httpClient *http.Client
	logger     logr.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for call tracing.
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(endpoint, username, apiKey string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		username: username,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the base URL the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type callRequest struct {
	Parameters []any `json:"parameters"`
}

// restMethods maps the methods the REST transport expresses as HTTP verbs
// on the object URL instead of a named method segment.
var restMethods = map[string]string{
	"createObject": http.MethodPost,
	"deleteObject": http.MethodDelete,
}

// callPath builds the request path and verb for method on service. id is
// zero for calls that do not target a specific object.
func callPath(service, method string, id int, hasParams bool) (string, string) {
	path := "/" + service
	if id != 0 {
		path += "/" + strconv.Itoa(id)
	}
	if verb, ok := restMethods[method]; ok {
		return verb, path + ".json"
	}
	if hasParams {
		return http.MethodPost, path + "/" + method + ".json"
	}
	return http.MethodGet, path + "/" + method + ".json"
}

// call invokes method on service. Named methods without params are issued
// as a GET, with params as a POST.
func (c *Client) call(ctx context.Context, service, method string, id int, params []any, result any) error {
	httpMethod, path := callPath(service, method, id, len(params) > 0)

	var bodyReader io.Reader
	if len(params) > 0 {
		data, err := json.Marshal(callRequest{Parameters: params})
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, c.endpoint+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.username, c.apiKey)

	c.logger.V(1).Info("calling api", "service", service, "method", method, "id", id)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{FaultCode: FaultTransport, FaultString: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{FaultCode: FaultTransport, FaultString: err.Error(), StatusCode: resp.StatusCode}
	}

	c.logger.V(2).Info("api response", "service", service, "method", method, "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode >= 400 {
		var apiErr APIError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.FaultString != "" {
			apiErr.StatusCode = resp.StatusCode
			return &apiErr
		}
		return &APIError{
			FaultCode:   strconv.Itoa(resp.StatusCode),
			FaultString: strings.TrimSpace(string(respBody)),
			StatusCode:  resp.StatusCode,
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &APIError{
				FaultCode:   FaultDecode,
				FaultString: fmt.Sprintf("failed to decode %s::%s response: %v", service, method, err),
				StatusCode:  resp.StatusCode,
			}
		}
	}

	return nil
}
