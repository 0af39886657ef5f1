package apitests

import (
	"github.com/jobhunter/integration-tests/client"
)

// DoFileUploadTest checks the resume storage side of file uploads: the
// per-user resume listing must be served without error indicators. Anything
// that is a list, or a structure without detail/error fields, counts.
func DoFileUploadTest(t *T) {
	resp := t.Request("GET", "/resumes/test_user", client.RequestOpts{})

	if resp.TransportFailed() {
		t.Errorf("resume endpoint failed: %s", resp.Describe())
		return
	}
	if resp.IsArray() || (!resp.HasField("detail") && !resp.HasField("error")) {
		t.Notef("Resume endpoint accessible")
		return
	}
	t.Errorf("resume endpoint failed: %s", resp.Describe())
}
