package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is the uniform shape every request resolves to, regardless of
// failure mode.
//
// Exactly one of three states applies: a transport failure (Err non-empty,
// Status 0), a JSON response (parsed true, JSON holds the value), or a
// non-JSON response (Text holds the raw body). Status carries the HTTP status
// code whenever a response was received.
type Response struct {
	Status int
	JSON   ldvalue.Value
	Text   string
	Err    string
	parsed bool
}

func normalize(status int, contentType string, body []byte) Response {
	r := Response{Status: status}
	if strings.HasPrefix(contentType, "application/json") {
		var v ldvalue.Value
		if err := json.Unmarshal(body, &v); err == nil {
			r.JSON = v
			r.parsed = true
			return r
		}
	}
	r.Text = string(body)
	return r
}

// TransportFailed reports whether the request never produced an HTTP response.
func (r Response) TransportFailed() bool {
	return r.Err != ""
}

// IsJSON reports whether the response body was parsed as JSON.
func (r Response) IsJSON() bool {
	return r.parsed
}

func (r Response) IsObject() bool {
	return r.parsed && r.JSON.Type() == ldvalue.ObjectType
}

func (r Response) IsArray() bool {
	return r.parsed && r.JSON.Type() == ldvalue.ArrayType
}

// HasField reports whether the response is a JSON object with the given key.
func (r Response) HasField(name string) bool {
	if !r.IsObject() {
		return false
	}
	_, ok := r.JSON.TryGetByKey(name)
	return ok
}

// Field returns the named key of a JSON object response, or a null value.
func (r Response) Field(name string) ldvalue.Value {
	return r.JSON.GetByKey(name)
}

// Detail returns the "detail" field that the backend's error responses carry,
// or "" if there is none.
func (r Response) Detail() string {
	return r.Field("detail").StringValue()
}

// IsNotFound reports whether the response is the backend's structured
// "route does not exist" error.
func (r Response) IsNotFound() bool {
	return r.Detail() == "Not Found"
}

// Describe renders the response compactly for failure messages.
func (r Response) Describe() string {
	switch {
	case r.TransportFailed():
		return fmt.Sprintf("transport error (status 0): %s", r.Err)
	case r.parsed:
		return fmt.Sprintf("status %d: %s", r.Status, truncateForLog([]byte(r.JSON.JSONString())))
	default:
		return fmt.Sprintf("status %d: %s", r.Status, truncateForLog([]byte(r.Text)))
	}
}
