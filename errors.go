package argos

import (
	"errors"

	"github.com/argos-cli/argos/internal/errs"
)

// ConfigError wraps a fatal, non-aggregated configuration mistake raised
// while declaring options, domains, or constraints, or while mutating a
// frozen registry. Treat it as a programmer bug, not a user-facing failure.
type ConfigError struct {
	cause *errs.ConfigError
}

func (e *ConfigError) Error() string { return e.cause.Error() }
func (e *ConfigError) Unwrap() error { return e.cause }

// Kind returns the underlying [errs.ConfigErrorKind].
func (e *ConfigError) Kind() errs.ConfigErrorKind { return e.cause.Kind }

func wrapConfigError(err error) error {
	if err == nil {
		return nil
	}

	var ce *errs.ConfigError
	if errors.As(err, &ce) {
		return &ConfigError{cause: ce}
	}

	return err
}

// ParseError is the user-visible result of a failed [Args.Parse]: either a
// single issue (aggregation disabled) or every accumulated
// [errs.ParseIssue] (aggregation enabled), rendered per spec.md §4.10.
type ParseError struct {
	Issues  []errs.ParseIssue
	message string
}

func newParseError(agg *errs.Aggregator) *ParseError {
	if agg.Empty() {
		return nil
	}

	return &ParseError{Issues: agg.Issues(), message: agg.Render()}
}

func (e *ParseError) Error() string { return e.message }

// ErrArgFileUnreadable is returned, wrapped with the offending path, when
// an `@file` token names an unreadable file (spec.md §4.2). It is never
// aggregated.
var ErrArgFileUnreadable = errs.ErrArgFileUnreadable
