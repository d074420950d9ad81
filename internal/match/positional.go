package match

import (
	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
)

// assignPositionals implements spec.md §4.4's closing paragraph: queued
// bare tokens fill Single positional slots in declaration order, and
// anything left over flows into the one trailing List/Set positional (if
// declared); leftovers with no such slot are an "unexpected positional"
// error.
func (m *matcher) assignPositionals() {
	active := m.reg.ActivePositionals(m.selectedDomain)

	cursor := 0

	for _, spec := range active {
		if spec.Repeats() {
			continue
		}

		if cursor >= len(m.queue) {
			continue
		}

		raw := registry.Raw{HasValue: true, Value: m.queue[cursor].text, ArgvIndex: m.queue[cursor].idx}
		cursor++

		if issue := convert.Accumulate(m.store, spec, raw, registry.SourceUser, true); issue != nil {
			m.issues = append(m.issues, *issue)
		}
	}

	var tail *registry.OptionSpec

	for _, spec := range active {
		if spec.Repeats() {
			tail = spec

			break
		}
	}

	remaining := m.queue[cursor:]

	if tail == nil {
		if len(remaining) > 0 {
			m.emit(errs.ParseUnexpectedPositional, "", "Unexpected positional argument%s: %s",
				plural(len(remaining)), joinTokens(remaining))
		}

		return
	}

	for _, q := range remaining {
		raw := registry.Raw{HasValue: true, Value: q.text, ArgvIndex: q.idx}
		if issue := convert.Accumulate(m.store, tail, raw, registry.SourceUser, true); issue != nil {
			m.issues = append(m.issues, *issue)
		}
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}

	return "s"
}

func joinTokens(qs []queuedToken) string {
	out := ""

	for i, q := range qs {
		if i > 0 {
			out += " "
		}

		out += q.text
	}

	return out
}
