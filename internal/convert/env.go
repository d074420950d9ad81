package convert

import (
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

// ApplyEnvFallback implements spec.md §4.6: for every Single-valued owner
// still missing a value, consult its declared environment variable. An
// empty env value on a boolean spec behaves like an unattached switch
// (flag mode, i.e. true); otherwise the env string is fed through the
// converter as a synthesized occurrence.
func ApplyEnvFallback(store *Store, reg *registry.Registry, plat platform.Platform) []errs.ParseIssue {
	var issues []errs.ParseIssue

	for _, spec := range reg.Options {
		if spec.ValueKind != registry.KindSingle || spec.Arity > 1 || spec.EnvVar == "" {
			continue
		}

		if _, ok := store.Values[spec.Owner]; ok {
			continue
		}

		raw, ok := envRaw(spec, plat)
		if !ok {
			continue
		}

		if issue := Accumulate(store, spec, raw, registry.SourceEnvironment, false); issue != nil {
			issues = append(issues, *issue)
		}
	}

	return issues
}

func envRaw(spec *registry.OptionSpec, plat platform.Platform) (registry.Raw, bool) {
	val, ok := plat.Getenv(spec.EnvVar)
	if !ok {
		return registry.Raw{}, false
	}

	if spec.BooleanFlag && val == "" {
		return registry.Raw{HasValue: true, Value: ""}, true
	}

	return registry.Raw{HasValue: true, Value: val}, true
}
