package argos

import (
	"io"
	"log/slog"

	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/log"
	"github.com/argos-cli/argos/platform"
)

// Settings holds the recognized configuration of spec.md §6: prefixes,
// separators, clustering, negation, did-you-mean, error aggregation, and
// argument-file expansion.
type Settings = registry.Settings

// NewSettings returns the spec.md-documented defaults.
func NewSettings() Settings { return registry.DefaultSettings() }

// Option configures an [Args] at construction time, in the
// functional-options style ([WithAppName], [WithAggregateErrors], ...).
type Option func(*Args)

// WithAppName sets the application name used in introspection snapshots.
func WithAppName(name string) Option {
	return func(a *Args) { a.settings.AppName = name }
}

// WithAppDescription sets the application description used in
// introspection snapshots.
func WithAppDescription(desc string) Option {
	return func(a *Args) { a.settings.AppDescription = desc }
}

// WithLongPrefix overrides the default "--" long-option prefix.
func WithLongPrefix(prefix string) Option {
	return func(a *Args) { a.settings.DefaultLongPrefix = prefix }
}

// WithShortPrefix overrides the default "-" short-option prefix.
func WithShortPrefix(prefix string) Option {
	return func(a *Args) { a.settings.ShortPrefix = prefix }
}

// WithClusterChar sets the short-flag clustering prefix character.
func WithClusterChar(ch byte) Option {
	return func(a *Args) { a.settings.ClusterChar = ch; a.settings.ClusterEnabled = true }
}

// WithoutCluster disables short-flag clustering entirely.
func WithoutCluster() Option {
	return func(a *Args) { a.settings.ClusterEnabled = false }
}

// WithValueSeparators overrides the recognized attached-value separator
// characters (default '=' and ':').
func WithValueSeparators(seps ...byte) Option {
	return func(a *Args) {
		a.settings.ValueSeparators = make(map[byte]bool, len(seps))
		for _, c := range seps {
			a.settings.ValueSeparators[c] = true
		}
	}
}

// WithNegationPrefix overrides the default "no-" negated-boolean prefix.
func WithNegationPrefix(prefix string) Option {
	return func(a *Args) { a.settings.NegationPrefix = prefix }
}

// WithUnknownOptionsAsPositionals makes unrecognized option-shaped tokens
// fall through to positional assignment instead of erroring.
func WithUnknownOptionsAsPositionals() Option {
	return func(a *Args) { a.settings.UnknownOptionsAsPositionals = true }
}

// WithoutDidYouMean sets [Settings].DidYouMean to false. The parser itself
// never reads that setting: its "Unknown option" errors carry no "did you
// mean" suggestion either way.
func WithoutDidYouMean() Option {
	return func(a *Args) { a.settings.DidYouMean = false }
}

// WithAggregateErrors makes parsing collect every error instead of failing
// on the first one.
func WithAggregateErrors() Option {
	return func(a *Args) { a.settings.AggregateErrors = true }
}

// WithMaxAggregatedErrors caps the number of errors rendered by an
// aggregated [ParseError] before truncating with "... (+N more)".
func WithMaxAggregatedErrors(n int) Option {
	return func(a *Args) { a.settings.MaxAggregatedErrors = n }
}

// WithArgumentFilePrefix overrides the default '@' argument-file prefix
// character.
func WithArgumentFilePrefix(ch byte) Option {
	return func(a *Args) { a.settings.ArgumentFilePrefix = ch; a.settings.ArgumentFileEnabled = true }
}

// WithoutArgumentFile disables "@file" argument-file expansion.
func WithoutArgumentFile() Option {
	return func(a *Args) { a.settings.ArgumentFileEnabled = false }
}

// WithPlatform overrides the default [platform.OS] Platform implementation,
// primarily for tests ([platform.Fake]).
func WithPlatform(p platform.Platform) Option {
	return func(a *Args) { a.platform = p }
}

// WithTrace emits debug-level log/slog lines to w, in logfmt: one per bound
// option declaration, and one when a parse succeeds or short-circuits on an
// eager option. Individual tokenizer and solver decisions are not traced.
// Unset (the default) means no tracing: Argos
// itself is synchronous and never logs on the caller's behalf unless
// asked to.
func WithTrace(w io.Writer) Option {
	return func(a *Args) { a.trace = slog.New(log.CreateHandler(w, slog.LevelDebug, log.FormatLogfmt)) }
}

// WithTraceLogger is [WithTrace] for a caller that already built its own
// [*slog.Logger] (e.g. from its own [log.Config]), instead of letting Argos
// construct a default logfmt one around a raw writer.
func WithTraceLogger(l *slog.Logger) Option {
	return func(a *Args) { a.trace = l }
}

// WithConfigFile enables the [configfile] default-value layer: at parse
// time, an unset option is filled from this YAML document (if present)
// before its hardcoded default applies.
func WithConfigFile(path string) Option {
	return func(a *Args) { a.configFilePath = path }
}
