package apitests

import (
	"github.com/jobhunter/integration-tests/client"
	"github.com/jobhunter/integration-tests/framework"
)

type environment struct {
	client *client.APIClient

	// per-route tally for the "API routes" overall check
	routesPassed int
	routesTotal  int
}

// T represents a test or subtest in the integration suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner; that functionality is
// provided by the lower-level framework package. To make test assertions,
// you can use the assert and require packages, passing the *T as if it were
// a *testing.T.
//
// It also carries the shared API client, so tests issue requests with t's
// debug logger attached and with whatever bearer token an earlier test
// stored.
type T struct {
	context *framework.Context
	env     *environment
}

func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t1 := &T{context: c, env: t.env}
		action(t1)
	})
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Skip() {
	t.context.Skip()
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

func (t *T) Notef(format string, args ...interface{}) {
	t.context.Notef(format, args...)
}

func (t *T) Debug(message string, args ...interface{}) {
	t.context.Debug(message, args...)
}

func (t *T) Client() *client.APIClient {
	return t.env.client
}

// Request performs one request against the backend, with this test's debug
// logger capturing the request/response exchange.
func (t *T) Request(method, path string, opts client.RequestOpts) client.Response {
	opts.Logger = t.context.DebugLogger()
	return t.env.client.Request(method, path, opts)
}
