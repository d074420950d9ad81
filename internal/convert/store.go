// Package convert implements the typed value pipeline of spec.md §4.5-4.8:
// per-occurrence conversion, collection accumulation, arity grouping,
// provenance tracking, environment fallback, default application, and
// validator execution.
package convert

import (
	"fmt"

	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
)

// Store holds the parse-scoped accumulation state: one Store per parse,
// discarded (or reset, via [Store.Reset]) when the owning Args is
// re-parsed.
type Store struct {
	Values       map[string]any
	Sources      map[string]registry.Source
	Occurrences  map[string]int
	UserProvided map[string]bool

	setKeys map[string]map[string]bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		Values:       make(map[string]any),
		Sources:      make(map[string]registry.Source),
		Occurrences:  make(map[string]int),
		UserProvided: make(map[string]bool),
		setKeys:      make(map[string]map[string]bool),
	}
}

// Reset clears all parse-scoped state in place (spec.md §5: re-parsing an
// instance clears values/sources/errors/occurrences but keeps the frozen
// registry).
func (s *Store) Reset() {
	s.Values = make(map[string]any)
	s.Sources = make(map[string]registry.Source)
	s.Occurrences = make(map[string]int)
	s.UserProvided = make(map[string]bool)
	s.setKeys = make(map[string]map[string]bool)
}

// setSource applies last-writer-wins-by-priority (invariant 10): a source
// only overwrites the recorded one if it is not lower priority.
func (s *Store) setSource(owner string, source registry.Source) {
	if cur, ok := s.Sources[owner]; !ok || source >= cur {
		s.Sources[owner] = source
	}
}

// formatInvalid renders spec.md §4.5's templated invalid-value message.
func formatInvalid(spec *registry.OptionSpec, original string) string {
	msg := fmt.Sprintf("Invalid value '%s' for %s", original, displayName(spec))
	if len(spec.ExpectedDesc) > 0 {
		msg += fmt.Sprintf(", expected %s", joinDesc(spec.ExpectedDesc))
	}

	return msg
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

func joinDesc(desc []string) string {
	out := desc[0]
	for _, d := range desc[1:] {
		out += "|" + d
	}

	return out
}

// Accumulate converts and stores one single-valued (arity == 1) occurrence.
// userOccurrence should be true only when the occurrence came directly off
// argv (spec.md §4.9's "present" tracking excludes env/default sources).
func Accumulate(store *Store, spec *registry.OptionSpec, raw registry.Raw, source registry.Source, userOccurrence bool) *errs.ParseIssue {
	res := spec.Converter(raw)

	switch res.Outcome {
	case registry.OutMissing:
		return nil
	case registry.OutInvalid:
		return &errs.ParseIssue{Kind: errs.ParseInvalidValue, Owner: spec.Owner, Message: formatInvalid(spec, res.Original)}
	case registry.OutValid:
		store.accumulateValue(spec, res.Value, source)

		if userOccurrence {
			store.Occurrences[spec.Owner]++
			store.UserProvided[spec.Owner] = true
		}

		return nil
	default:
		return nil
	}
}

func (s *Store) accumulateValue(spec *registry.OptionSpec, v any, source registry.Source) {
	switch spec.ValueKind {
	case registry.KindSingle:
		s.Values[spec.Owner] = v
	case registry.KindList:
		existing, _ := s.Values[spec.Owner].([]any)
		s.Values[spec.Owner] = append(existing, v)
	case registry.KindSet:
		s.insertSet(spec, v)
	}

	s.setSource(spec.Owner, source)
}

func (s *Store) insertSet(spec *registry.OptionSpec, v any) {
	key := keyOf(spec, v)

	if s.setKeys[spec.Owner] == nil {
		s.setKeys[spec.Owner] = make(map[string]bool)
	}

	if s.setKeys[spec.Owner][key] {
		return
	}

	s.setKeys[spec.Owner][key] = true

	existing, _ := s.Values[spec.Owner].([]any)
	s.Values[spec.Owner] = append(existing, v)
}

func keyOf(spec *registry.OptionSpec, v any) string {
	if spec.KeyFunc != nil {
		return spec.KeyFunc(v)
	}

	return fmt.Sprintf("%v", v)
}

// AccumulateGroup converts and stores one fully-consumed arity-N
// invocation.
func AccumulateGroup(store *Store, spec *registry.OptionSpec, raws []registry.Raw, source registry.Source, userOccurrence bool) *errs.ParseIssue {
	res := spec.GroupParser(raws)

	switch res.Outcome {
	case registry.OutInvalid:
		return &errs.ParseIssue{Kind: errs.ParseInvalidValue, Owner: spec.Owner, Message: formatInvalid(spec, res.Original)}
	case registry.OutValid:
		store.accumulateGroup(spec, res.Values, source)

		if userOccurrence {
			store.Occurrences[spec.Owner]++
			store.UserProvided[spec.Owner] = true
		}

		return nil
	default:
		return nil
	}
}

func (s *Store) accumulateGroup(spec *registry.OptionSpec, group []any, source registry.Source) {
	switch spec.ValueKind {
	case registry.KindSingle:
		s.Values[spec.Owner] = group
	case registry.KindList:
		existing, _ := s.Values[spec.Owner].([][]any)
		s.Values[spec.Owner] = append(existing, group)
	case registry.KindSet:
		key := groupKey(spec, group)

		if s.setKeys[spec.Owner] == nil {
			s.setKeys[spec.Owner] = make(map[string]bool)
		}

		if s.setKeys[spec.Owner][key] {
			return
		}

		s.setKeys[spec.Owner][key] = true

		existing, _ := s.Values[spec.Owner].([][]any)
		s.Values[spec.Owner] = append(existing, group)
	}

	s.setSource(spec.Owner, source)
}

func groupKey(spec *registry.OptionSpec, group []any) string {
	if spec.KeyFunc != nil && len(group) > 0 {
		return spec.KeyFunc(group[0])
	}

	return fmt.Sprintf("%v", group)
}

// EnsureEmptyCollection stores an empty List/Set collection for owners that
// never received an occurrence, per spec.md §4.7.
func (s *Store) EnsureEmptyCollection(spec *registry.OptionSpec) {
	if _, ok := s.Values[spec.Owner]; ok {
		return
	}

	if spec.Arity > 1 {
		return // nullable, no default collection
	}

	switch spec.ValueKind {
	case registry.KindList, registry.KindSet:
		s.Values[spec.Owner] = []any{}
		s.setSource(spec.Owner, registry.SourceDefault)
	}
}
