// Package errs separates the two error families of spec.md §7: fatal
// configuration errors (raised at registration/freeze time, never
// aggregated) and user-visible parse errors (accumulated by [Aggregator]
// when configured to do so).
package errs

import (
	"errors"
	"fmt"
)

// ConfigErrorKind enumerates the configuration-error causes of spec.md §7.
type ConfigErrorKind string

const (
	ConfigDuplicateSwitch        ConfigErrorKind = "duplicate_switch"
	ConfigReservedSwitch         ConfigErrorKind = "reserved_switch"
	ConfigBadPrefix              ConfigErrorKind = "bad_prefix"
	ConfigBadDomainID            ConfigErrorKind = "bad_domain_id"
	ConfigDuplicateRule          ConfigErrorKind = "duplicate_rule"
	ConfigSelfReference          ConfigErrorKind = "self_reference"
	ConfigMultipleRepeatablePos  ConfigErrorKind = "multiple_repeatable_positional"
	ConfigRepeatableNotLast      ConfigErrorKind = "repeatable_positional_not_last"
	ConfigUnknownInheritedDomain ConfigErrorKind = "unknown_inherited_domain"
	ConfigFragmentDisplayFields  ConfigErrorKind = "fragment_display_fields"
	ConfigBadArity               ConfigErrorKind = "bad_arity"
	ConfigArityConflict          ConfigErrorKind = "arity_conflict"
	ConfigBadRequiredMin         ConfigErrorKind = "bad_required_min"
	ConfigFrozen                 ConfigErrorKind = "registry_frozen"
	ConfigMissingOwner           ConfigErrorKind = "missing_owner"
)

// ConfigError is a fatal, non-aggregated configuration mistake: a
// programmer bug, never a user-facing parse failure.
type ConfigError struct {
	Kind    ConfigErrorKind
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("argos: configuration error (%s): %s", e.Kind, e.Message)
}

// NewConfigError builds a [ConfigError] with a formatted message.
func NewConfigError(kind ConfigErrorKind, format string, args ...any) *ConfigError {
	return &ConfigError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ParseErrorKind enumerates the user-visible parse-error causes of
// spec.md §7.
type ParseErrorKind string

const (
	ParseUnknownOption        ParseErrorKind = "unknown_option"
	ParseMissingValue         ParseErrorKind = "missing_value"
	ParseClusterError         ParseErrorKind = "cluster_error"
	ParseDuplicateOption      ParseErrorKind = "duplicate_option"
	ParseDomainRestricted     ParseErrorKind = "domain_restricted"
	ParseDomainRequired       ParseErrorKind = "domain_required"
	ParseUnknownDomain        ParseErrorKind = "unknown_domain"
	ParseInvalidValue         ParseErrorKind = "invalid_value"
	ParseUnexpectedPositional ParseErrorKind = "unexpected_positional"
	ParseRequired             ParseErrorKind = "required"
	ParseConflict             ParseErrorKind = "conflict"
	ParseGroup                ParseErrorKind = "group"
	ParseConditional          ParseErrorKind = "conditional"
	ParseValidator            ParseErrorKind = "validator"
	ParseArgFile              ParseErrorKind = "arg_file"
)

// ParseIssue is one accumulated, user-visible parse failure.
type ParseIssue struct {
	Kind    ParseErrorKind
	Owner   string
	Message string
}

func (i ParseIssue) Error() string { return i.Message }

// ErrArgFileUnreadable is returned (not aggregated) when an @file token
// names a file that cannot be read, per spec.md §4.2.
var ErrArgFileUnreadable = errors.New("argos: argument file unreadable")
