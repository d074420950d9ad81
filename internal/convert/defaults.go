package convert

import "github.com/argos-cli/argos/internal/registry"

// ApplyDefaults implements spec.md §4.7: every owner still without a stored
// value is given one last chance to produce its declared default by calling
// its Converter with an empty [registry.Raw] (arity == 1) or, for
// collection-shaped options, by installing an empty collection via
// [Store.EnsureEmptyCollection]. Nothing here is allowed to fail: a missing
// optional value simply stays missing.
func ApplyDefaults(store *Store, reg *registry.Registry) {
	for _, spec := range reg.Options {
		if _, ok := store.Values[spec.Owner]; ok {
			continue
		}

		if spec.Arity > 1 {
			continue
		}

		if spec.ValueKind == registry.KindList || spec.ValueKind == registry.KindSet {
			store.EnsureEmptyCollection(spec)
			continue
		}

		res := spec.Converter(registry.Raw{})
		if res.Outcome == registry.OutValid {
			store.Values[spec.Owner] = res.Value
			store.setSource(spec.Owner, registry.SourceDefault)
		}
	}
}
