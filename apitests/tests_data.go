package apitests

import (
	"github.com/jobhunter/integration-tests/client"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoDataLoadingTests verifies that the seeded dummy data is served from the
// database through each listing endpoint.
func DoDataLoadingTests(t *T) {
	for _, resource := range []string{"jobs", "candidates", "recruiters"} {
		resource := resource
		t.Run(resource, func(t *T) {
			resp := t.Request("GET", "/"+resource, client.RequestOpts{})

			items := resp.Field("items")
			if items.Type() != ldvalue.ArrayType {
				t.Errorf("failed to load %s: %s", resource, resp.Describe())
				return
			}
			t.Notef("Loaded %d %s from database", items.Count(), resource)
		})
	}
}
