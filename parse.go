package argos

import (
	"github.com/argos-cli/argos/configfile"
	"github.com/argos-cli/argos/internal/classify"
	"github.com/argos-cli/argos/internal/constraint"
	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/match"
)

// Parse implements spec.md §2's data flow end to end: argument-file
// expansion, tokenize/match, environment fallback, default application,
// validation, and constraint solving, returning a [ParseError] on failure.
// A declaration that fails to freeze yields a [ConfigError]; an unreadable
// argument file yields an error wrapping [ErrArgFileUnreadable], and an
// unreadable or malformed config file ([WithConfigFile]) a plain error.
// Neither of these file errors is aggregated.
//
// Re-parsing the same [Args] clears prior parse-scoped state; spec.md §5
// forbids declaring new options after the first parse (the registry
// freezes here).
func (a *Args) Parse(argv []string) error {
	if err := a.registry.Freeze(); err != nil {
		return wrapConfigError(err)
	}

	expanded, err := classify.ExpandArgFiles(argv, a.registry, a.platform)
	if err != nil {
		return err
	}

	outcome := match.Run(expanded, a.registry)
	a.store = outcome.Store
	a.selectedDomain = outcome.SelectedDomain
	a.parsed = true
	a.errorLines = nil

	agg := errs.NewAggregator(a.registry.Settings.AggregateErrors, a.registry.Settings.MaxAggregatedErrors)

	for _, issue := range outcome.Issues {
		if agg.Add(issue) {
			return a.fail(agg)
		}
	}

	if outcome.EagerTriggered {
		for _, spec := range a.registry.Options {
			a.store.EnsureEmptyCollection(spec)
		}

		convert.ApplyDefaults(a.store, a.registry)
		a.traceLog("eager short-circuit", "domain", a.selectedDomain)

		return nil
	}

	if !agg.Empty() {
		return a.fail(agg)
	}

	for _, issue := range convert.ApplyEnvFallback(a.store, a.registry, a.platform) {
		if agg.Add(issue) {
			return a.fail(agg)
		}
	}

	if a.configFilePath != "" {
		cfgIssues, err := configfile.Apply(a.configFilePath, a.platform, a.store, a.registry)
		if err != nil {
			return err
		}

		for _, issue := range cfgIssues {
			if agg.Add(issue) {
				return a.fail(agg)
			}
		}
	}

	convert.ApplyDefaults(a.store, a.registry)

	for _, spec := range a.registry.Options {
		for _, issue := range convert.RunValidators(a.store, spec) {
			if agg.Add(issue) {
				return a.fail(agg)
			}
		}
	}

	constraint.Solve(a.store, a.registry, a.selectedDomain, a.platform, agg)

	if !agg.Empty() {
		return a.fail(agg)
	}

	a.traceLog("parse succeeded", "domain", a.selectedDomain)

	return nil
}

// fail records the aggregator's rendered lines for [Args.Snapshot] and
// returns the corresponding [ParseError].
func (a *Args) fail(agg *errs.Aggregator) error {
	pe := newParseError(agg)

	a.errorLines = make([]string, len(pe.Issues))
	for i, issue := range pe.Issues {
		a.errorLines[i] = issue.Message
	}

	return pe
}

// SelectedDomain returns the domain chosen during the most recent parse,
// or "" if domains are not in use or none was selected.
func (a *Args) SelectedDomain() string { return a.selectedDomain }

// Clone returns a fresh [Args] sharing this instance's frozen registry but
// with empty parse-scoped state — spec.md §5's "re-parse clears values but
// retains the frozen registry", exposed as an explicit operation for
// callers that parse the same declaration against many argv slices.
func (a *Args) Clone() *Args {
	return &Args{
		settings: a.settings,
		registry: a.registry,
		platform: a.platform,
		trace:    a.trace,
		store:    convert.NewStore(),

		configFilePath: a.configFilePath,
	}
}
