package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
)

// RunValidators implements spec.md §4.8 for one owner whose stored value is
// non-nil, running element validators (and, for collections, collection
// validators too) and rendering the templated message on the first
// failure per element/collection.
func RunValidators(store *Store, spec *registry.OptionSpec) []errs.ParseIssue {
	v, ok := store.Values[spec.Owner]
	if !ok {
		return nil
	}

	var issues []errs.ParseIssue

	switch {
	case spec.ValueKind == registry.KindSingle && spec.Arity == 1:
		if issue, bad := checkElement(spec, v); bad {
			issues = append(issues, issue)
		}
	case spec.ValueKind == registry.KindSingle && spec.Arity > 1:
		group, _ := v.([]any)
		for _, elem := range group {
			if issue, bad := checkElement(spec, elem); bad {
				issues = append(issues, issue)
			}
		}
	case spec.Arity == 1:
		elems, _ := v.([]any)

		for _, elem := range elems {
			if issue, bad := checkElement(spec, elem); bad {
				issues = append(issues, issue)
			}
		}

		if issue, bad := checkCollection(spec, elems); bad {
			issues = append(issues, issue)
		}
	default:
		groups, _ := v.([][]any)

		var flat []any

		for _, group := range groups {
			for _, elem := range group {
				if issue, bad := checkElement(spec, elem); bad {
					issues = append(issues, issue)
				}
			}

			flat = append(flat, group...)
		}

		if issue, bad := checkCollection(spec, flat); bad {
			issues = append(issues, issue)
		}
	}

	return issues
}

func checkElement(spec *registry.OptionSpec, v any) (errs.ParseIssue, bool) {
	for _, validator := range spec.ElementValidators {
		if !validator.Check(v) {
			return errs.ParseIssue{
				Kind:    errs.ParseValidator,
				Owner:   spec.Owner,
				Message: renderTemplate(validator.Template, spec, v, 1),
			}, true
		}
	}

	return errs.ParseIssue{}, false
}

func checkCollection(spec *registry.OptionSpec, elems []any) (errs.ParseIssue, bool) {
	for _, validator := range spec.CollectionValidators {
		if !validator.Check(elems) {
			return errs.ParseIssue{
				Kind:    errs.ParseValidator,
				Owner:   spec.Owner,
				Message: renderTemplate(validator.Template, spec, elems, len(elems)),
			}, true
		}
	}

	return errs.ParseIssue{}, false
}

// renderTemplate substitutes spec.md §4.8's {option}/{value}/{count}
// placeholders itself: {option} becomes the option's display name, {value}
// the value formatted with %v, and {count} the given count.
func renderTemplate(template string, spec *registry.OptionSpec, value any, count int) string {
	r := strings.NewReplacer(
		"{option}", displayName(spec),
		"{value}", fmt.Sprintf("%v", value),
		"{count}", strconv.Itoa(count),
	)

	return r.Replace(template)
}
