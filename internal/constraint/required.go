package constraint

import (
	"fmt"

	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

// checkRequiredMin implements spec.md §4.9 step 3, including the
// interactive-prompt fallback for a required option with zero occurrences.
func checkRequiredMin(store *convert.Store, reg *registry.Registry, domain string, plat platform.Platform, agg *errs.Aggregator) bool {
	for _, spec := range reg.Options {
		effMin := 0

		for _, rule := range reg.Rules {
			if rule.Kind != registry.RuleRequiredMin || rule.Owner != spec.Owner || !rule.ScopedTo(domain) {
				continue
			}

			if rule.Min > effMin {
				effMin = rule.Min
			}
		}

		if effMin == 0 {
			continue
		}

		c := occurrenceCount(store, spec)
		if c >= effMin {
			continue
		}

		if c == 0 && spec.Input != nil && promptForValue(store, spec, plat) {
			continue
		}

		var msg string

		if effMin == 1 {
			msg = fmt.Sprintf("%s is required", displayName(spec))
		} else {
			msg = fmt.Sprintf("%s requires at least %d occurrences (got %d)", displayName(spec), effMin, c)
		}

		if agg.Add(errs.ParseIssue{Kind: errs.ParseRequired, Owner: spec.Owner, Message: msg}) {
			return true
		}
	}

	return false
}

// occurrenceCount implements spec.md §4.9's shape-dependent "count":
// Single non-arity is 1 iff a value was stored, Single arity is the
// invocation count, List/Set non-arity is the element count, List/Set
// arity is the group count.
func occurrenceCount(store *convert.Store, spec *registry.OptionSpec) int {
	switch {
	case spec.ValueKind == registry.KindSingle && spec.Arity == 1:
		if _, ok := store.Values[spec.Owner]; ok {
			return 1
		}

		return 0
	case spec.ValueKind == registry.KindSingle:
		return store.Occurrences[spec.Owner]
	case spec.Arity == 1:
		elems, _ := store.Values[spec.Owner].([]any)

		return len(elems)
	default:
		groups, _ := store.Values[spec.Owner].([][]any)

		return len(groups)
	}
}

// promptForValue drives the Platform prompt-for-input flow, honoring
// Hidden/Confirm/MismatchMessage/MaxRetries, and on success stores the
// converted value as if the user had typed it on the command line.
func promptForValue(store *convert.Store, spec *registry.OptionSpec, plat platform.Platform) bool {
	in := spec.Input

	retries := in.MaxRetries
	if retries < 1 {
		retries = 1
	}

	for attempt := 0; attempt < retries; attempt++ {
		plat.Eprint(in.Prompt)

		value, ok := readLine(plat, in.Hidden)
		if !ok {
			return false
		}

		if in.Confirm {
			plat.Eprint(in.Prompt)

			confirm, ok := readLine(plat, in.Hidden)
			if !ok || confirm != value {
				if in.MismatchMessage != "" {
					plat.Eprintln(in.MismatchMessage)
				}

				continue
			}
		}

		raw := registry.Raw{HasValue: true, Value: value}
		if issue := convert.Accumulate(store, spec, raw, registry.SourceUser, true); issue == nil {
			return true
		}
	}

	return false
}

func readLine(plat platform.Platform, hidden bool) (string, bool) {
	if hidden {
		v, ok, err := plat.ReadPassword()
		if err != nil {
			return "", false
		}

		return v, ok
	}

	return plat.ReadLine()
}
