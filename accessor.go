package argos

import "github.com/argos-cli/argos/internal/registry"

// Accessor reads the typed value of a Single-shaped option after
// [Args.Parse] completes. Reading before a successful parse (or after a
// parse that left the option nullable and unset) returns T's zero value;
// use [Accessor.Present] or [Accessor.Source] to distinguish "unset" from
// "set to the zero value".
type Accessor[T any] struct {
	args  *Args
	owner string
}

// Get returns the stored value, or T's zero value if unset.
func (a Accessor[T]) Get() T {
	v, ok := a.args.store.Values[a.owner]
	if !ok {
		var zero T

		return zero
	}

	t, _ := v.(T)

	return t
}

// Present reports whether the user supplied at least one occurrence
// (spec.md §4.9's presence definition — env/default/missing don't count).
func (a Accessor[T]) Present() bool {
	return a.args.store.UserProvided[a.owner]
}

// Source reports the highest-priority origin that set the value.
func (a Accessor[T]) Source() registry.Source {
	return a.args.store.Sources[a.owner]
}

// AccessorFor returns an [Accessor] for an owner declared elsewhere — by a
// builder method whose return value wasn't kept, or by [declare.Apply]'s
// data-driven registration. T must match the declared value type.
func AccessorFor[T any](a *Args, owner string) Accessor[T] {
	return Accessor[T]{args: a, owner: owner}
}

// ListAccessorFor is [AccessorFor] for a List/Set-shaped owner.
func ListAccessorFor[T any](a *Args, owner string) ListAccessor[T] {
	return ListAccessor[T]{args: a, owner: owner}
}

// ListAccessor reads the typed values of a List/Set-shaped (or arity-N)
// option after [Args.Parse] completes.
type ListAccessor[T any] struct {
	args  *Args
	owner string
}

// Get returns the accumulated elements in stored order (argv order for
// List, first-insertion order for Set), or nil if none were accumulated.
func (a ListAccessor[T]) Get() []T {
	raw, _ := a.args.store.Values[a.owner].([]any)
	if raw == nil {
		return nil
	}

	out := make([]T, 0, len(raw))
	for _, v := range raw {
		t, _ := v.(T)
		out = append(out, t)
	}

	return out
}

// Present reports whether the user supplied at least one occurrence.
func (a ListAccessor[T]) Present() bool {
	return a.args.store.UserProvided[a.owner]
}

// Source reports the highest-priority origin that set the collection.
func (a ListAccessor[T]) Source() registry.Source {
	return a.args.store.Sources[a.owner]
}
