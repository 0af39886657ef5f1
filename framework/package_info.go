// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the job-hunter API.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results. Tests run strictly sequentially, in
// registration order, and a fault inside one test never aborts the run.
//
// 2. Every executed test produces exactly one TestResult; the ordered sequence
// of results is folded into a Summary that can be printed and persisted for
// offline inspection.
//
// The domain-specific code that knows what is being tested lives in the
// apitests package, which provides its own test API on top of the context.
package framework
