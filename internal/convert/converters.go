package convert

import (
	"strconv"
	"strings"

	"github.com/argos-cli/argos/internal/registry"
)

// booleanLiterals implements spec.md §4.4's case-insensitive boolean
// literal set used by the optional-lookahead peek.
var booleanLiterals = map[string]bool{
	"true": true, "false": true,
	"yes": true, "no": true,
	"on": true, "off": true,
	"1": true, "0": true,
}

// IsBooleanLiteral reports whether s parses as one of spec.md §4.4's
// recognized boolean spellings.
func IsBooleanLiteral(s string) bool {
	return booleanLiterals[strings.ToLower(s)]
}

func parseBooleanLiteral(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}

// StringConverter returns a Converter for a plain string option. def is
// used only when there is no occurrence at all (spec.md §4.7); hasDefault
// distinguishes "no default" (nullable) from "default is the empty
// string".
func StringConverter(def string, hasDefault bool) registry.Converter {
	return func(raw registry.Raw) registry.Result {
		if !raw.HasValue {
			if hasDefault {
				return registry.Valid(def)
			}

			return registry.Missing()
		}

		return registry.Valid(raw.Value)
	}
}

// IntConverter returns a Converter for an integer option.
func IntConverter(def int, hasDefault bool) registry.Converter {
	return func(raw registry.Raw) registry.Result {
		if !raw.HasValue {
			if hasDefault {
				return registry.Valid(def)
			}

			return registry.Missing()
		}

		n, err := strconv.Atoi(strings.TrimSpace(raw.Value))
		if err != nil {
			return registry.Invalid(raw.Value)
		}

		return registry.Valid(n)
	}
}

// FloatConverter returns a Converter for a float64 option.
func FloatConverter(def float64, hasDefault bool) registry.Converter {
	return func(raw registry.Raw) registry.Result {
		if !raw.HasValue {
			if hasDefault {
				return registry.Valid(def)
			}

			return registry.Missing()
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(raw.Value), 64)
		if err != nil {
			return registry.Invalid(raw.Value)
		}

		return registry.Valid(f)
	}
}

// BoolConverter returns a Converter for a boolean flag, honoring the
// negation alias (spec.md §4.4): an explicit value is parsed as a boolean
// literal and then inverted if raw.Negated; an attached/optional-value-less
// switch alone means true, or false when matched via the negation alias.
func BoolConverter(def bool, hasDefault bool) registry.Converter {
	return func(raw registry.Raw) registry.Result {
		if !raw.HasValue {
			if hasDefault {
				return registry.Valid(def)
			}

			return registry.Missing()
		}

		trimmed := strings.TrimSpace(raw.Value)
		if trimmed == "" {
			v := true
			if raw.Negated {
				v = false
			}

			return registry.Valid(v)
		}

		if !IsBooleanLiteral(trimmed) {
			return registry.Invalid(raw.Value)
		}

		v := parseBooleanLiteral(trimmed)
		if raw.Negated {
			v = !v
		}

		return registry.Valid(v)
	}
}

// EnumConverter returns a Converter accepting only the given candidate
// strings (case-sensitive), for options whose ExpectedDesc should list the
// fixed token set.
func EnumConverter(candidates []string, def string, hasDefault bool) registry.Converter {
	allowed := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		allowed[c] = true
	}

	return func(raw registry.Raw) registry.Result {
		if !raw.HasValue {
			if hasDefault {
				return registry.Valid(def)
			}

			return registry.Missing()
		}

		if !allowed[raw.Value] {
			return registry.Invalid(raw.Value)
		}

		return registry.Valid(raw.Value)
	}
}

// DefaultGroupParser builds a GroupParser for an arity-N option from its
// per-element Converter, running elementValidators inline as spec.md §4.5
// describes.
func DefaultGroupParser(conv registry.Converter, arity int, elementValidators []registry.Validator) registry.GroupParser {
	return func(raws []registry.Raw) registry.GroupResult {
		if len(raws) != arity {
			return registry.GroupResult{Outcome: registry.OutInvalid, Original: joinRaws(raws)}
		}

		values := make([]any, 0, arity)

		for _, raw := range raws {
			res := conv(raw)
			if res.Outcome != registry.OutValid {
				return registry.GroupResult{Outcome: registry.OutInvalid, Original: raw.Value}
			}

			for _, v := range elementValidators {
				if !v.Check(res.Value) {
					return registry.GroupResult{Outcome: registry.OutInvalid, Original: raw.Value}
				}
			}

			values = append(values, res.Value)
		}

		return registry.GroupResult{Outcome: registry.OutValid, Values: values}
	}
}

func joinRaws(raws []registry.Raw) string {
	parts := make([]string, len(raws))
	for i, r := range raws {
		parts[i] = r.Value
	}

	return strings.Join(parts, " ")
}

// Probe returns whether tok should be consumed as a definite value for an
// optional-lookahead option: spec.md §9's "type-aware peek" reimagined as
// a probe derived from the converter when none is explicitly supplied.
func Probe(spec *registry.OptionSpec, tok string) bool {
	if spec.BooleanFlag {
		return IsBooleanLiteral(tok)
	}

	if spec.Probe != nil {
		return spec.Probe(tok)
	}

	res := spec.Converter(registry.Raw{HasValue: true, Value: tok})

	return res.Outcome == registry.OutValid
}
