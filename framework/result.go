package framework

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

// TestID identifies a test or subtest as a path of names, such as
// ["data loading", "jobs"].
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestResult is the recorded outcome of one executed test. Results are
// appended in execution order and never mutated afterward.
type TestResult struct {
	Name      string    `json:"test"`
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Results is the accumulated outcome of a test run. Tests holds one entry per
// executed test, in registration order; Failures holds the failed subset in
// the same order.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Summary is the aggregate report that gets printed and persisted at the end
// of a run. PassedTests+FailedTests always equals TotalTests, and TotalTests
// always equals len(Results).
type Summary struct {
	TotalTests  int          `json:"total_tests"`
	PassedTests int          `json:"passed_tests"`
	FailedTests int          `json:"failed_tests"`
	SuccessRate float64      `json:"success_rate"`
	Results     []TestResult `json:"results"`
}

func (r Results) Summarize() Summary {
	s := Summary{
		TotalTests:  len(r.Tests),
		FailedTests: len(r.Failures),
		Results:     append([]TestResult(nil), r.Tests...),
	}
	s.PassedTests = s.TotalTests - s.FailedTests
	if s.TotalTests > 0 {
		s.SuccessRate = float64(s.PassedTests) / float64(s.TotalTests) * 100
	}
	return s
}

// WriteFile persists the summary as indented JSON.
func (s Summary) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
