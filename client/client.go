package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jobhunter/integration-tests/framework"
)

// APIClient performs HTTP requests against the backend under test and
// normalizes every outcome into a Response. Its Request method never returns
// an error: transport failures, non-JSON bodies, and JSON bodies all come
// back as values, which is the harness's only way of observing them.
//
// The client owns one HTTP session for the whole run. The bearer token, if
// set, is written once by the authentication test and read by every
// subsequent request.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
	authToken  string
}

// RequestOpts contains optional parameters for APIClient.Request.
type RequestOpts struct {
	// JSONBody, if non-nil, is serialized as the request payload.
	JSONBody interface{}

	// Headers is merged with the default headers. A caller-supplied
	// Authorization header suppresses the stored token.
	Headers map[string]string

	// NoAuth suppresses the stored token entirely, for tests that probe how
	// the backend treats unauthenticated requests.
	NoAuth bool

	// Logger receives a line per request/response; defaults to the client's
	// own logger.
	Logger framework.Logger
}

func New(baseURL string, logger framework.Logger) *APIClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	// No timeout here: the harness does not cancel requests, it just waits.
	return &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// SetAuthToken stores a bearer token for all subsequent requests. It is meant
// to be called at most once per run, by the authentication test.
func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

func (c *APIClient) AuthToken() string {
	return c.authToken
}

// Close releases the client's connection resources.
func (c *APIClient) Close() {
	c.httpClient.CloseIdleConnections()
}

// Request performs one HTTP request and normalizes the outcome. A transport
// failure produces a Response with Status 0 and a description in Err; it is
// never surfaced as a Go error or a panic.
func (c *APIClient) Request(method, path string, opts RequestOpts) Response {
	logger := opts.Logger
	if logger == nil {
		logger = c.logger
	}
	url := c.baseURL + path

	var bodyReader io.Reader
	if opts.JSONBody != nil {
		data, err := json.Marshal(opts.JSONBody)
		if err != nil {
			return Response{Err: "marshaling request body: " + err.Error()}
		}
		bodyReader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return Response{Err: err.Error()}
	}
	if opts.JSONBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if !opts.NoAuth && c.authToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	logger.Printf("%s %s", method, url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Printf("request failed: %s", err)
		return Response{Err: err.Error()}
	}

	var data []byte
	if resp.Body != nil {
		data, err = io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.Printf("reading response body failed: %s", err)
			return Response{Status: resp.StatusCode, Err: err.Error()}
		}
	}
	logger.Printf("got %d: %s", resp.StatusCode, truncateForLog(data))

	return normalize(resp.StatusCode, resp.Header.Get("Content-Type"), data)
}

func truncateForLog(data []byte) string {
	const limit = 500
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}
