// Package classify implements the token classifier and argument-file
// expander of spec.md §4.2 and §4.3: deciding, without consuming, what kind
// of thing an argv token is before the matcher acts on it.
package classify

import (
	"strings"
	"unicode"

	"github.com/argos-cli/argos/internal/registry"
)

// Kind is the classifier's verdict for one token.
type Kind int

const (
	KindBare Kind = iota
	KindDoubleDash
	KindOption
)

// Result is the classifier's verdict plus any attached-value split it
// found, so the matcher doesn't need to re-parse the token.
type Result struct {
	Kind Kind

	// Populated when Kind == KindOption and an attached value was found
	// (long "--name=value"/"--name:value" or short "-ovalue").
	HasAttached   bool
	AttachedName  string
	AttachedValue string
}

// Classify implements spec.md §4.3.
func Classify(tok string, reg *registry.Registry) Result {
	if tok == "--" {
		return Result{Kind: KindDoubleDash}
	}

	if isNegativeNumber(tok, reg) {
		return Result{Kind: KindBare}
	}

	if hasRegisteredPrefix(tok, reg) {
		res := Result{Kind: KindOption}

		if name, value, ok := reg.SplitLongAttached(tok); ok {
			res.HasAttached = true
			res.AttachedName = name
			res.AttachedValue = value
		} else if name, value, ok := splitShortAttached(tok, reg); ok {
			res.HasAttached = true
			res.AttachedName = name
			res.AttachedValue = value
		}

		return res
	}

	return Result{Kind: KindBare}
}

// hasRegisteredPrefix reports whether tok begins with the configured long
// or short prefix.
func hasRegisteredPrefix(tok string, reg *registry.Registry) bool {
	if strings.HasPrefix(tok, reg.Settings.DefaultLongPrefix) && len(tok) > len(reg.Settings.DefaultLongPrefix) {
		return true
	}

	return strings.HasPrefix(tok, reg.Settings.ShortPrefix) && len(tok) > len(reg.Settings.ShortPrefix)
}

// isNegativeNumber implements the negative-number heuristic: "-<digit>"
// passes through to bare unless that exact short switch is registered.
func isNegativeNumber(tok string, reg *registry.Registry) bool {
	prefix := reg.Settings.ShortPrefix
	if !strings.HasPrefix(tok, prefix) {
		return false
	}

	rest := tok[len(prefix):]
	if rest == "" || !unicode.IsDigit(rune(rest[0])) {
		return false
	}

	shortTok := prefix + rest[:1]
	if _, known := reg.BySwitch[shortTok]; known {
		return false
	}

	return true
}

// splitShortAttached splits "-ovalue" or "-o=value" into the short switch
// and its attached remainder, for single-character short prefixes only.
// Only a switch that RequiresValue can absorb an attached remainder; a
// boolean-led multi-char token (e.g. "-vt3") falls through so the matcher
// tries it as a cluster instead.
func splitShortAttached(tok string, reg *registry.Registry) (name, value string, ok bool) {
	prefix := reg.Settings.ShortPrefix
	if len(prefix) != 1 || !strings.HasPrefix(tok, prefix) {
		return "", "", false
	}

	body := tok[len(prefix):]
	if len(body) < 2 {
		return "", "", false
	}

	short := prefix + body[:1]

	spec, known := reg.BySwitch[short]
	if !known || !spec.RequiresValue {
		return "", "", false
	}

	rest := body[1:]
	if len(rest) > 0 && reg.Settings.ValueSeparators[rest[0]] {
		rest = rest[1:]
	}

	return short, rest, true
}

// IsCluster reports whether tok is a cluster candidate: its prefix equals
// the configured cluster char and its body is longer than one character.
// A token carrying the (longer) long-option prefix is never a cluster.
func IsCluster(tok string, reg *registry.Registry) bool {
	if !reg.Settings.ClusterEnabled {
		return false
	}

	prefix := string(reg.Settings.ClusterChar)
	if !strings.HasPrefix(tok, prefix) {
		return false
	}

	if long := reg.Settings.DefaultLongPrefix; len(long) > len(prefix) && strings.HasPrefix(tok, long) {
		return false
	}

	body := tok[len(prefix):]

	return len(body) > 1
}
