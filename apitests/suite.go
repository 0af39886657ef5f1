package apitests

import (
	"github.com/jobhunter/integration-tests/client"
	"github.com/jobhunter/integration-tests/framework"
)

// RunTestSuite executes every integration test in registration order and
// returns the accumulated results. Order matters: the authentication test
// stores the bearer token that later requests reuse, although every test
// also tolerates an unauthenticated backend.
func RunTestSuite(
	apiClient *client.APIClient,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env:     &environment{client: apiClient},
		}

		t.Run("health check", DoHealthCheck)
		t.Run("auth0 authentication", DoAuthTests)
		t.Run("data loading", DoDataLoadingTests)
		t.Run("API routes", DoAPIRouteTests)
		t.Run("file upload", DoFileUploadTest)
		t.Run("AI streaming", DoAIStreamingTest)
		t.Run("recruiter workflow", DoRecruiterWorkflowTest)
		t.Run("admin LLM settings", DoAdminLLMSettingsTest)
		t.Run("prompts management", DoPromptsManagementTest)
	})
}
