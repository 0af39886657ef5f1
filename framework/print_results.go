package framework

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

// PrintResults writes the end-of-run summary banner to standard output.
func PrintResults(results Results) {
	summary := results.Summarize()
	fmt.Println("============================================")
	fmt.Printf("Test results: %d/%d tests passed (%.1f%%)\n",
		summary.PassedTests, summary.TotalTests, summary.SuccessRate)

	if results.OK() {
		successColor.Println("All tests passed")
		return
	}
	failureColor.Printf("%d tests failed:\n", summary.FailedTests)
	for _, f := range results.Failures {
		failureColor.Printf("  %s\n", f.Name)
	}
}
