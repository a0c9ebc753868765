// Package sandbox stands in for a real interpreter. It screens learner code
// with deny and allow lists and fabricates output from print calls; nothing
// is executed.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"pylearn/internal/domain"
)

type Options struct {
	Timeout       time.Duration
	MaxDelay      time.Duration
	MemoryLimitMB int
}

// Simulator implements domain.CodeExecutor.
type Simulator struct {
	opts Options
}

func NewSimulator(opts Options) *Simulator {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.MemoryLimitMB <= 0 {
		opts.MemoryLimitMB = 50
	}
	return &Simulator{opts: opts}
}

var _ domain.CodeExecutor = (*Simulator)(nil)

// Execute screens code, waits a random artificial latency and fabricates the
// output. With test cases, every case gets the same fabricated output and
// passes when it matches the expected value.
func (s *Simulator) Execute(ctx context.Context, code string, testCases []domain.TestCase) (*domain.ExecutionResult, error) {
	start := time.Now()
	if err := CheckCode(code); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	if len(testCases) == 0 {
		output, err := s.run(ctx, code)
		if err != nil {
			return nil, err
		}
		return &domain.ExecutionResult{
			Success:       true,
			Output:        output,
			ExecutionTime: time.Since(start),
			MemoryUsageKB: s.memoryUsage(),
		}, nil
	}

	result := &domain.ExecutionResult{Success: true}
	for _, tc := range testCases {
		tr := domain.TestResult{Input: tc.Input, Expected: tc.Expected}
		output, err := s.run(ctx, code)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, err
			}
			tr.Error = err.Error()
		} else {
			tr.Actual = output
			tr.Passed = strings.TrimSpace(output) == strings.TrimSpace(tc.Expected)
		}
		if !tr.Passed {
			result.Success = false
		}
		result.TestResults = append(result.TestResults, tr)
	}
	result.ExecutionTime = time.Since(start)
	result.MemoryUsageKB = s.memoryUsage()
	return result, nil
}

func (s *Simulator) run(ctx context.Context, code string) (string, error) {
	if err := s.delay(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("Execution timed out after %s", s.opts.Timeout)
		}
		return "", err
	}
	return FabricateOutput(code), nil
}

func (s *Simulator) delay(ctx context.Context) error {
	if err := ctx.Err(); err != nil || s.opts.MaxDelay <= 0 {
		return err
	}
	d := time.Duration(rand.Int64N(int64(s.opts.MaxDelay)))
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// memoryUsage reports a plausible figure below 10MB and the configured limit.
func (s *Simulator) memoryUsage() int {
	limit := min(10*1024, s.opts.MemoryLimitMB*1024)
	return rand.IntN(limit)
}
