package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jobhunter/integration-tests/framework"

	"github.com/fatih/color"
)

var (
	passMarker = color.New(color.FgGreen).Sprint("PASS")
	failMarker = color.New(color.FgRed).Sprint("FAIL")
)

// ConsoleTestLogger prints one status line per completed test, as it
// completes, plus the captured request/response exchange when wanted.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {}

func (c *ConsoleTestLogger) TestFinished(
	id framework.TestID,
	result framework.TestResult,
	debugOutput framework.CapturedOutput,
) {
	marker := passMarker
	if !result.Success {
		marker = failMarker
	}
	fmt.Printf("%s %s\n", marker, id)
	if result.Message != "" {
		for _, line := range strings.Split(result.Message, "\n") {
			fmt.Printf("   %s\n", line)
		}
	}
	if len(debugOutput) > 0 &&
		((!result.Success && c.DebugOutputOnFailure) || (result.Success && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("SKIP %s\n", id)
	} else {
		fmt.Printf("SKIP %s (%s)\n", id, reason)
	}
}
