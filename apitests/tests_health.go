package apitests

import (
	"github.com/jobhunter/integration-tests/client"
)

func DoHealthCheck(t *T) {
	resp := t.Request("GET", "/health", client.RequestOpts{})

	if resp.Field("status").StringValue() == "ok" && resp.HasField("message") {
		t.Notef("Health endpoint responding correctly")
		return
	}
	t.Errorf("health check failed: %s", resp.Describe())
}
