package errs

import (
	"strconv"
	"strings"
)

// Aggregator accumulates [ParseIssue]s across one parse, enforcing
// spec.md §4.10: when AggregateErrors is false, the first issue raised
// aborts immediately ([Aggregator.Add] then returns true, and callers stop
// as soon as it does); when true, every rule runs to completion and the first
// MaxErrors issues are joined by newline with a truncation summary.
type Aggregator struct {
	Aggregate bool
	MaxErrors int

	issues []ParseIssue
}

// NewAggregator builds an Aggregator. A MaxErrors <= 0 means unbounded.
func NewAggregator(aggregate bool, maxErrors int) *Aggregator {
	return &Aggregator{Aggregate: aggregate, MaxErrors: maxErrors}
}

// Add records an issue. Returns true if the caller should stop evaluating
// further rules immediately (non-aggregate mode).
func (a *Aggregator) Add(issue ParseIssue) bool {
	a.issues = append(a.issues, issue)

	return !a.Aggregate
}

// Empty reports whether no issues were recorded.
func (a *Aggregator) Empty() bool { return len(a.issues) == 0 }

// Issues returns the recorded issues in the order they were added.
func (a *Aggregator) Issues() []ParseIssue {
	return a.issues
}

// Render joins the first MaxErrors issues with newline, per spec.md §4.10,
// appending "... (+N more)" when truncated. Returns "" if there are no
// issues.
func (a *Aggregator) Render() string {
	if len(a.issues) == 0 {
		return ""
	}

	limit := len(a.issues)
	if a.MaxErrors > 0 && a.MaxErrors < limit {
		limit = a.MaxErrors
	}

	lines := make([]string, 0, limit)
	for _, issue := range a.issues[:limit] {
		lines = append(lines, issue.Message)
	}

	out := strings.Join(lines, "\n")

	if remaining := len(a.issues) - limit; remaining > 0 {
		out += "\n... (+" + strconv.Itoa(remaining) + " more)"
	}

	return out
}
