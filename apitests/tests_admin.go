package apitests

import (
	"github.com/jobhunter/integration-tests/client"
)

// The admin routes require an admin session, which the suite does not have.
// The point of these tests is distinguishing "route exists and enforces
// auth" from "route is absent": any structured error other than Not Found /
// Method Not Allowed means the route is mounted.

func DoAdminLLMSettingsTest(t *T) {
	checkAdminGate(t, "/api/admin/llm/providers", "LLM settings")
}

func DoPromptsManagementTest(t *T) {
	checkAdminGate(t, "/api/admin/prompts", "prompts management")
}

func checkAdminGate(t *T, path, what string) {
	resp := t.Request("GET", path, client.RequestOpts{NoAuth: true})

	if resp.HasField("detail") {
		if detail := resp.Detail(); detail != "Not Found" && detail != "Method Not Allowed" {
			t.Notef("%s endpoint accessible (requires auth)", what)
			return
		}
	}
	t.Errorf("%s failed: %s", what, resp.Describe())
}
