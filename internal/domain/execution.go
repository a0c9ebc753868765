package domain

import (
	"context"
	"time"
)

// ExecutionResult is what a code executor reports for one run.
type ExecutionResult struct {
	Success       bool
	Output        string
	Error         string
	ExecutionTime time.Duration
	MemoryUsageKB int
	TestResults   []TestResult
}

type TestResult struct {
	Input    string
	Expected string
	Actual   string
	Passed   bool
	Error    string
}

// PassedCount returns the number of passing test results.
func (r *ExecutionResult) PassedCount() int {
	n := 0
	for _, tr := range r.TestResults {
		if tr.Passed {
			n++
		}
	}
	return n
}

// CodeExecutor runs learner code. Implementations may be simulated or a real sandbox;
// callers only depend on this contract. An error means the code was rejected or could not run.
type CodeExecutor interface {
	Execute(ctx context.Context, code string, testCases []TestCase) (*ExecutionResult, error)
}
