// Package report accumulates named pass/fail checks into a structured
// summary, separate from any rendering. A Runner holds no global state
// and performs no I/O; rendering to a console is the stateless concern
// of [Render].
package report

import (
	"fmt"
	"math"
)

// Check is the outcome of one named check. Detail carries the failure
// description and is empty for passing checks.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Checks   []Check
	Failures []Check
}

// SuccessRate returns the percentage of passing checks, 0..100.
// An empty run has a rate of 0.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Passed) / float64(s.Total) * 100
}

// OK reports whether every check passed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// Runner accumulates checks. The zero value is ready to use.
type Runner struct {
	checks []Check
}

// Checkf records a named check. The format and args describe the
// failure and are evaluated only when ok is false. It returns ok so
// checks can chain.
func (r *Runner) Checkf(name string, ok bool, format string, args ...any) bool {
	var detail string
	if !ok && format != "" {
		detail = fmt.Sprintf(format, args...)
	}

	r.checks = append(r.checks, Check{Name: name, Passed: ok, Detail: detail})

	return ok
}

// Equal records a check that got equals want. Both values must be
// comparable and of the same type.
func (r *Runner) Equal(name string, got, want any) bool {
	return r.Checkf(name, got == want, "got %v, want %v", got, want)
}

// Near records a check that got is within tolerance of want.
func (r *Runner) Near(name string, got, want, tolerance float64) bool {
	ok := math.Abs(got-want) <= tolerance

	return r.Checkf(name, ok, "got %v, want %v±%v", got, want, tolerance)
}

// Summary returns the aggregate outcome of all recorded checks. The
// returned slices are copies; the Runner can keep accumulating.
func (r *Runner) Summary() Summary {
	s := Summary{
		Total:  len(r.checks),
		Checks: make([]Check, len(r.checks)),
	}
	copy(s.Checks, r.checks)

	for _, c := range r.checks {
		if c.Passed {
			s.Passed++
		} else {
			s.Failed++
			s.Failures = append(s.Failures, c)
		}
	}

	return s
}
