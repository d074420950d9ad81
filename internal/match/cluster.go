package match

import (
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
)

// handleCluster implements spec.md §4.4's cluster branch: every body
// character is a boolean/no-value short option except the one that first
// requires a value, which consumes the remainder of the body (or, if
// nothing remains, the next argv token) and ends the cluster.
func (m *matcher) handleCluster(tok string) {
	prefix := string(m.reg.Settings.ClusterChar)
	body := tok[len(prefix):]
	clusterIdx := m.i
	m.i++

	pos := 0
	for pos < len(body) {
		sw := prefix + string(body[pos])

		spec, ok := m.reg.BySwitch[sw]
		if !ok {
			m.emit(errs.ParseClusterError, "", "Unknown option %q inside cluster %q", sw, tok)

			return
		}

		if !spec.RequiresValue {
			raw := registry.Raw{HasValue: true, Value: "", ArgvIndex: clusterIdx, Negated: spec.NegationSwitches[sw]}
			m.accumulateSingle(spec, raw)

			if m.eagerTriggered {
				return
			}

			pos++

			continue
		}

		if spec.Arity > 1 {
			m.emit(errs.ParseClusterError, spec.Owner,
				"%s: multi-value options cannot appear in a cluster", sw)

			return
		}

		rest := body[pos+1:]
		if len(rest) > 0 && m.reg.Settings.ValueSeparators[rest[0]] {
			rest = rest[1:]
		}

		var raw registry.Raw
		if rest != "" {
			raw = registry.Raw{HasValue: true, Value: rest, ArgvIndex: clusterIdx}
		} else if m.i < len(m.argv) && !m.isOptionShaped(m.argv[m.i]) {
			raw = registry.Raw{HasValue: true, Value: m.argv[m.i], ArgvIndex: m.i}
			m.i++
		} else {
			m.emit(errs.ParseMissingValue, spec.Owner, "Missing value for %s", sw)

			return
		}

		raw.Negated = spec.NegationSwitches[sw]
		m.accumulateSingle(spec, raw)

		return
	}
}
