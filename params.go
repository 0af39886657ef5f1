package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jobhunter/integration-tests/framework"

	"github.com/alessio/shellescape"
)

const defaultBaseURL = "http://backend:8000"
const defaultOutputPath = "integration_test_results.json"

type commandParams struct {
	baseURL    string
	atlas      bool
	verbose    bool
	outputPath string
	filters    framework.RegexFilters
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "url", defaultBaseURL, "base URL of the backend under test")
	fs.BoolVar(&c.atlas, "atlas", false, "backend uses the MongoDB Atlas configuration (informational only)")
	fs.BoolVar(&c.verbose, "verbose", false, "show captured debug output for passing tests too")
	fs.StringVar(&c.outputPath, "output", defaultOutputPath, "path of the JSON results file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunFailedCommand builds a command line that re-runs the top-level test
// groups containing failures. Filters apply at every level of the test tree,
// so the patterns anchor on the group name rather than the full subtest name.
func rerunFailedCommand(args []string, params commandParams, results framework.Results) string {
	var b commandBuilder
	b.add(args[0], "-url", params.baseURL)

	seen := map[string]bool{}
	for _, f := range results.Failures {
		group := f.Name
		if i := strings.Index(group, "/"); i >= 0 {
			group = group[:i]
		}
		if !seen[group] {
			seen[group] = true
			b.add("-run", "^"+regexp.QuoteMeta(group))
		}
	}
	return b.String()
}
