package configfile

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

// Apply loads the YAML document at path (via plat, so it is faked the same
// way argument-file reads are in tests) and, for every declared owner that
// has no stored value yet (from the command line or the environment),
// converts and stores the document's value with [registry.SourceDefault].
// Keys naming undeclared owners, and owners with arity above one, are
// skipped. Call this after environment fallback and before
// [convert.ApplyDefaults], so precedence is
// user > environment > config file > hardcoded default.
//
// A missing file is not an error (the layer is optional); a file that
// cannot be read or is not valid YAML is returned as the error result. A
// value that fails conversion is reported as a [errs.ParseIssue] with
// [errs.ParseInvalidValue], the same kind a bad command-line value gets.
func Apply(path string, plat platform.Platform, store *convert.Store, reg *registry.Registry) ([]errs.ParseIssue, error) {
	content, ok, err := plat.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configfile: reading %s: %w", path, err)
	}

	if !ok {
		return nil, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("configfile: parsing %s: %w", path, err)
	}

	var issues []errs.ParseIssue

	for owner, value := range doc {
		spec, known := reg.ByOwner[owner]
		if !known {
			continue
		}

		if _, present := store.Values[owner]; present {
			continue
		}

		if spec.Arity > 1 {
			continue // arity>1 options are not representable as one scalar value
		}

		raw := registry.Raw{HasValue: true, Value: fmt.Sprintf("%v", value)}

		if issue := convert.Accumulate(store, spec, raw, registry.SourceDefault, false); issue != nil {
			issues = append(issues, *issue)
		}
	}

	return issues, nil
}
