package apitests

import (
	"github.com/jobhunter/integration-tests/client"
)

// A syntactically well-formed JWT that the backend cannot verify. Test
// environments usually have no Auth0 tenant configured, so the suite only
// checks that the auth flow is reachable, not that it accepts a real token.
const mockAuthToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ." +
	"SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c"

func DoAuthTests(t *T) {
	resp := t.Request("GET", "/api/v1/users/me", client.RequestOpts{
		Headers: map[string]string{"Authorization": "Bearer " + mockAuthToken},
	})

	switch {
	case resp.IsNotFound():
		t.Notef("Auth0 not configured (expected in dev environment)")
	case resp.Status == 200 || resp.Status == 401 || resp.Status == 403:
		t.Notef("Auth0 authentication flow accessible")
	default:
		t.Errorf("auth flow not working: %s", resp.Describe())
		return
	}

	// Later tests reuse this token; each of them still tolerates an
	// unauthenticated backend.
	t.Client().SetAuthToken(mockAuthToken)
}
