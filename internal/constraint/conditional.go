package constraint

import (
	"fmt"
	"strings"

	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

// checkConditionals implements spec.md §4.9 step 4.
func checkConditionals(store *convert.Store, reg *registry.Registry, domain string, _ platform.Platform, agg *errs.Aggregator) bool {
	for _, rule := range reg.Rules {
		if rule.Kind != registry.RuleConditional || !rule.ScopedTo(domain) {
			continue
		}

		if rule.CondKind == registry.CondAllowOnlyIfValuePredicate {
			if !present(store, rule.TargetOwner) {
				continue
			}

			if rule.Predicate == nil || rule.Predicate(store.Values[rule.PredicateRef]) {
				continue
			}

			if agg.Add(errs.ParseIssue{
				Kind:  errs.ParseConditional,
				Owner: rule.TargetOwner,
				Message: fmt.Sprintf("%s not allowed because %s has the wrong value",
					ownerLabel(reg, rule.TargetOwner), rule.PredicateRef),
			}) {
				return true
			}

			continue
		}

		if !conditionTriggered(store, rule) || present(store, rule.TargetOwner) {
			continue
		}

		if agg.Add(errs.ParseIssue{
			Kind:    errs.ParseConditional,
			Owner:   rule.TargetOwner,
			Message: conditionalMessage(reg, rule),
		}) {
			return true
		}
	}

	return false
}

func conditionTriggered(store *convert.Store, rule registry.Rule) bool {
	switch rule.CondKind {
	case registry.CondAnyPresent:
		for _, ref := range rule.Refs {
			if present(store, ref) {
				return true
			}
		}

		return false
	case registry.CondAllPresent:
		if len(rule.Refs) == 0 {
			return false
		}

		for _, ref := range rule.Refs {
			if !present(store, ref) {
				return false
			}
		}

		return true
	case registry.CondAnyAbsent:
		for _, ref := range rule.Refs {
			if !present(store, ref) {
				return true
			}
		}

		return false
	case registry.CondAllAbsent:
		for _, ref := range rule.Refs {
			if present(store, ref) {
				return false
			}
		}

		return true
	case registry.CondValuePredicate:
		if rule.Predicate == nil {
			return false
		}

		return rule.Predicate(store.Values[rule.PredicateRef])
	default:
		return false
	}
}

func conditionalMessage(reg *registry.Registry, rule registry.Rule) string {
	target := ownerLabel(reg, rule.TargetOwner)

	switch rule.CondKind {
	case registry.CondAnyPresent:
		return fmt.Sprintf("%s is required because %s is present", target, joinOwners(reg, rule.Refs))
	case registry.CondAllPresent:
		return fmt.Sprintf("%s is required because %s are all present", target, joinOwners(reg, rule.Refs))
	case registry.CondAnyAbsent:
		return fmt.Sprintf("%s is required because %s is absent", target, joinOwners(reg, rule.Refs))
	case registry.CondAllAbsent:
		return fmt.Sprintf("%s is required because %s are all absent", target, joinOwners(reg, rule.Refs))
	case registry.CondValuePredicate:
		return fmt.Sprintf("%s is required because %s has a matching value", target, rule.PredicateRef)
	default:
		return fmt.Sprintf("%s is required", target)
	}
}

func ownerLabel(reg *registry.Registry, owner string) string {
	if spec, ok := reg.ByOwner[owner]; ok {
		return displayName(spec)
	}

	return owner
}

func joinOwners(reg *registry.Registry, owners []string) string {
	labels := make([]string, len(owners))
	for i, o := range owners {
		labels[i] = ownerLabel(reg, o)
	}

	return strings.Join(labels, ", ")
}
