package constraint

import (
	"fmt"

	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

// checkConflicts implements spec.md §4.9 step 5.
func checkConflicts(store *convert.Store, reg *registry.Registry, domain string, _ platform.Platform, agg *errs.Aggregator) bool {
	for _, rule := range reg.Rules {
		if rule.Kind != registry.RuleConflicts || !rule.ScopedTo(domain) {
			continue
		}

		if presentCount(store, rule.Owners) <= 1 {
			continue
		}

		if agg.Add(errs.ParseIssue{
			Kind:    errs.ParseConflict,
			Message: fmt.Sprintf("Conflicting options: %s", joinOwners(reg, rule.Owners)),
		}) {
			return true
		}
	}

	return false
}

// checkGroups implements spec.md §4.9 step 6.
func checkGroups(store *convert.Store, reg *registry.Registry, domain string, _ platform.Platform, agg *errs.Aggregator) bool {
	for _, rule := range reg.Rules {
		if rule.Kind != registry.RuleGroup || !rule.ScopedTo(domain) {
			continue
		}

		count := presentCount(store, rule.Owners)

		violated := false
		msg := ""

		switch rule.GroupKind {
		case registry.GroupExactlyOne:
			if count != 1 {
				violated = true
				msg = fmt.Sprintf("Exactly one of %s is required", joinOwners(reg, rule.Owners))
			}
		case registry.GroupAtMostOne:
			if count > 1 {
				violated = true
				msg = fmt.Sprintf("At most one of %s is allowed", joinOwners(reg, rule.Owners))
			}
		case registry.GroupAtLeastOne:
			if count < 1 {
				violated = true
				msg = fmt.Sprintf("At least one of %s is required", joinOwners(reg, rule.Owners))
			}
		}

		if !violated {
			continue
		}

		if agg.Add(errs.ParseIssue{Kind: errs.ParseGroup, Message: msg}) {
			return true
		}
	}

	return false
}

func presentCount(store *convert.Store, owners []string) int {
	n := 0

	for _, o := range owners {
		if present(store, o) {
			n++
		}
	}

	return n
}
