package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a test or subtest in progress. It is used similarly to
// *testing.T: it implements require.TestingT so standard assertions work
// against it, has a Run method for subtests, and can skip tests.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	note        string
	hasSubtests bool
	errors      []error
}

// Run executes a top-level test function and returns the accumulated results.
// Tests registered inside action run strictly sequentially, in registration
// order. A panic inside any test is recorded as a failure of that test and
// the run continues with the next one.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}

		// A test that only grouped subtests does not produce a result of its
		// own unless something failed in its own body; each subtest has
		// already been recorded individually. The same goes for the root
		// context that encloses the whole suite.
		if (len(c.id.Path) == 0 || c.hasSubtests) && !c.failed {
			return
		}
		name := c.id.String()
		if name == "" {
			name = "(suite)"
		}
		result := TestResult{
			Name:      name,
			Success:   !c.failed,
			Message:   c.resultMessage(),
			Timestamp: time.Now(),
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
		c.env.testLogger.TestFinished(c.id, result, c.debugLogger.Output())
	}()

	action(c)
}

func (c *Context) resultMessage() string {
	if !c.failed {
		return c.note
	}
	var ss []string
	for _, e := range c.errors {
		ss = append(ss, e.Error())
	}
	return strings.Join(ss, "; ")
}

func (c *Context) ID() TestID {
	return c.id
}

// Run executes a named subtest. The subtest's failures do not fail the
// enclosing test.
func (c *Context) Run(name string, action func(*Context)) {
	c.hasSubtests = true
	path := append(append([]string(nil), c.id.Path...), name)
	id := TestID{Path: path}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Notef sets the message that accompanies this test's result if it passes.
// Failed tests get their accumulated error text instead.
func (c *Context) Notef(format string, args ...interface{}) {
	c.note = fmt.Sprintf(format, args...)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
