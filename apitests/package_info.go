// Package apitests contains the integration tests for the job-hunter backend
// and their supporting API.
//
// Each test issues one or a few HTTP requests through the client package and
// decides pass/fail from the response shape. Several tests deliberately
// accept "feature not configured" responses, because the test environment may
// legitimately lack optional integrations such as Auth0 or job scraping.
//
// Harness infrastructure that is not specific to this backend, such as result
// aggregation and failure isolation, is in the lower-level framework package.
package apitests
