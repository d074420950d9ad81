// Package constraint implements the six-step constraint solver of
// spec.md §4.9: domain restriction, duplicate detection, required
// minimums (with the interactive-prompt fallback), conditionals,
// conflicts, and groups, all evaluated after the typed value pipeline and
// accumulated through an [errs.Aggregator].
package constraint

import (
	"fmt"

	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

// Solve runs the six-step algorithm against the accumulated store.
// Evaluation stops as soon as agg.Add reports an abort (non-aggregate
// mode); in aggregate mode every step runs to completion.
func Solve(store *convert.Store, reg *registry.Registry, domain string, plat platform.Platform, agg *errs.Aggregator) {
	steps := []func(*convert.Store, *registry.Registry, string, platform.Platform, *errs.Aggregator) bool{
		restrictDomains,
		checkDuplicates,
		checkRequiredMin,
		checkConditionals,
		checkConflicts,
		checkGroups,
	}

	for _, step := range steps {
		if stop := step(store, reg, domain, plat, agg); stop {
			return
		}
	}
}

// present reports spec.md §4.9's presence definition: a user-supplied
// occurrence, irrespective of its resulting value.
func present(store *convert.Store, owner string) bool {
	return store.UserProvided[owner]
}

func restrictDomains(store *convert.Store, reg *registry.Registry, domain string, _ platform.Platform, agg *errs.Aggregator) bool {
	for _, spec := range reg.Options {
		if spec.DeclaredDomains == nil || !present(store, spec.Owner) {
			continue
		}

		if spec.DeclaredDomains[domain] {
			continue
		}

		if agg.Add(errs.ParseIssue{
			Kind:    errs.ParseDomainRestricted,
			Owner:   spec.Owner,
			Message: fmt.Sprintf("%s is allowed only in %s", displayName(spec), joinDomains(spec.DeclaredDomains)),
		}) {
			return true
		}
	}

	return false
}

func checkDuplicates(store *convert.Store, reg *registry.Registry, _ string, _ platform.Platform, agg *errs.Aggregator) bool {
	for _, spec := range reg.Options {
		if spec.Repeatable || spec.IsPositional() {
			continue
		}

		if store.Occurrences[spec.Owner] <= 1 {
			continue
		}

		if agg.Add(errs.ParseIssue{
			Kind:    errs.ParseDuplicateOption,
			Owner:   spec.Owner,
			Message: fmt.Sprintf("%s provided multiple times", displayName(spec)),
		}) {
			return true
		}
	}

	return false
}

func displayName(spec *registry.OptionSpec) string {
	if spec.IsPositional() {
		return "<" + spec.Owner + ">"
	}

	if spec.BaseSwitch != "" {
		return spec.BaseSwitch
	}

	if len(spec.Switches) > 0 {
		return spec.Switches[0]
	}

	return spec.Owner
}

func joinDomains(domains map[string]bool) string {
	out := ""

	first := true
	for id := range domains {
		if !first {
			out += ", "
		}

		out += id
		first = false
	}

	return out
}
