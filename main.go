package main

import (
	"fmt"
	"os"

	"github.com/jobhunter/integration-tests/apitests"
	"github.com/jobhunter/integration-tests/client"
	"github.com/jobhunter/integration-tests/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	os.Exit(run(params))
}

func run(params commandParams) int {
	fmt.Printf("Testing against: %s\n", params.baseURL)
	if params.atlas {
		fmt.Println("Using MongoDB Atlas configuration")
	}
	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")

	apiClient := client.New(params.baseURL, framework.NullLogger())
	defer apiClient.Close()

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: true,
		DebugOutputOnSuccess: params.verbose,
	}

	results := apitests.RunTestSuite(apiClient, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results)

	if err := results.Summarize().WriteFile(params.outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Could not write results file: %s\n", err)
		return 1
	}
	fmt.Printf("\nDetailed results saved to %s\n", params.outputPath)

	if !results.OK() {
		fmt.Printf("\nTo re-run the failed test groups:\n  %s\n",
			rerunFailedCommand(os.Args, params, results))
		return 1
	}
	return 0
}
