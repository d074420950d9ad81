// Package match implements the tokenizer/matcher main loop of spec.md
// §4.4: the single cursor pass over argv that resolves exact switches,
// attached values, clusters, domain selection, and the positional tail,
// driving the typed value pipeline in internal/convert as it goes.
package match

import (
	"fmt"

	"github.com/argos-cli/argos/internal/classify"
	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
)

// Outcome is everything the main loop produces for the phases that follow
// it: environment fallback, default application, validation, and the
// constraint solver.
type Outcome struct {
	Store          *convert.Store
	SelectedDomain string
	EagerTriggered bool
	Issues         []errs.ParseIssue
}

type queuedToken struct {
	text string
	idx  int
}

// Run tokenizes and matches an already argument-file-expanded argv against
// reg, which must be frozen.
func Run(argv []string, reg *registry.Registry) Outcome {
	m := &matcher{
		argv:  argv,
		reg:   reg,
		store: convert.NewStore(),
	}

	m.run()

	out := Outcome{Store: m.store, SelectedDomain: m.selectedDomain, EagerTriggered: m.eagerTriggered}
	if !m.eagerTriggered {
		m.assignPositionals()
		out.Issues = m.issues
	}

	return out
}

type matcher struct {
	argv []string
	reg  *registry.Registry

	store *convert.Store

	i               int
	afterDoubleDash bool
	domainDecided   bool
	selectedDomain  string
	eagerTriggered  bool
	queue           []queuedToken
	issues          []errs.ParseIssue
}

func (m *matcher) emit(kind errs.ParseErrorKind, owner, format string, args ...any) {
	m.issues = append(m.issues, errs.ParseIssue{Kind: kind, Owner: owner, Message: fmt.Sprintf(format, args...)})
}

func (m *matcher) run() {
	for m.i < len(m.argv) && !m.eagerTriggered {
		tok := m.argv[m.i]

		if m.afterDoubleDash {
			m.handleBare(tok, m.i)
			m.i++

			continue
		}

		if tok == "--" {
			m.afterDoubleDash = true
			m.i++

			continue
		}

		cls := classify.Classify(tok, m.reg)

		switch cls.Kind {
		case classify.KindDoubleDash:
			m.afterDoubleDash = true
			m.i++
		case classify.KindBare:
			m.handleBare(tok, m.i)
			m.i++
		case classify.KindOption:
			m.handleOption(tok, cls)
		}
	}
}

func (m *matcher) handleBare(tok string, idx int) {
	if !m.domainDecided && m.reg.HasDomains() {
		m.domainDecided = true

		if id, ok := m.reg.ResolveDomain(tok); ok {
			m.selectedDomain = id

			return
		}
	}

	m.queue = append(m.queue, queuedToken{text: tok, idx: idx})
}

func (m *matcher) handleOption(tok string, cls classify.Result) {
	if spec, ok := m.reg.BySwitch[tok]; ok {
		m.handleExact(spec, tok)

		return
	}

	if cls.HasAttached {
		spec, ok := m.reg.BySwitch[cls.AttachedName]
		if !ok {
			m.unknownOption(tok)

			return
		}

		m.handleAttached(spec, cls.AttachedName, cls.AttachedValue)

		return
	}

	if classify.IsCluster(tok, m.reg) {
		m.handleCluster(tok)

		return
	}

	m.unknownOption(tok)
}

func (m *matcher) unknownOption(tok string) {
	if m.reg.Settings.UnknownOptionsAsPositionals {
		m.handleBare(tok, m.i)
		m.i++

		return
	}

	m.emit(errs.ParseUnknownOption, "", "Unknown option %q", tok)
	m.i++
}

// handleExact resolves a fully-matched switch token (§4.4 step 5, first
// bullet).
func (m *matcher) handleExact(spec *registry.OptionSpec, sw string) {
	negated := spec.NegationSwitches[sw]
	switchIdx := m.i
	m.i++

	switch {
	case spec.Arity > 1 && spec.RequiresValue:
		raws, ok := m.consumeGroup(spec, switchIdx)
		if !ok {
			return
		}

		m.accumulateGroup(spec, raws)
	case spec.RequiresValue:
		raw, ok := m.consumeOne(spec, switchIdx)
		if !ok {
			return
		}

		raw.Negated = negated
		m.accumulateSingle(spec, raw)
	default:
		raw := m.consumeOptionalLookahead(spec)
		raw.Negated = negated
		m.accumulateSingle(spec, raw)
	}
}

// handleAttached resolves "--name=value"/"-ovalue" forms (§4.4 step 5,
// second/third bullets). Arity > 1 is not supported in attached form.
func (m *matcher) handleAttached(spec *registry.OptionSpec, sw, value string) {
	if spec.Arity > 1 {
		m.emit(errs.ParseMissingValue, spec.Owner, "%s: attached value not supported for multi-value options", displayName(spec))

		return
	}

	raw := registry.Raw{HasValue: true, Value: value, ArgvIndex: m.i, Negated: spec.NegationSwitches[sw]}
	m.accumulateSingle(spec, raw)
}

// consumeOne consumes exactly one following token as a required value
// (§4.4 step 5, exact-match/requiresValue branch).
func (m *matcher) consumeOne(spec *registry.OptionSpec, switchIdx int) (registry.Raw, bool) {
	if m.i >= len(m.argv) || m.isOptionShaped(m.argv[m.i]) {
		m.emit(errs.ParseMissingValue, spec.Owner, "Missing value for %s", displayName(spec))

		return registry.Raw{}, false
	}

	raw := registry.Raw{HasValue: true, Value: m.argv[m.i], ArgvIndex: m.i}
	m.i++

	return raw, true
}

// consumeOptionalLookahead implements the type-aware peek of §4.4/§9: the
// next token is consumed only if it is not option-shaped and the spec's
// probe accepts it.
func (m *matcher) consumeOptionalLookahead(spec *registry.OptionSpec) registry.Raw {
	if m.i < len(m.argv) {
		tok := m.argv[m.i]

		if !m.isOptionShaped(tok) && convert.Probe(spec, tok) {
			raw := registry.Raw{HasValue: true, Value: tok, ArgvIndex: m.i}
			m.i++

			return raw
		}
	}

	return registry.Raw{HasValue: true, Value: ""}
}

// consumeGroup consumes spec.Arity unconditional following tokens for a
// multi-value invocation (§4.4's arity > 1 branch).
func (m *matcher) consumeGroup(spec *registry.OptionSpec, switchIdx int) ([]registry.Raw, bool) {
	raws := make([]registry.Raw, 0, spec.Arity)

	for n := 0; n < spec.Arity; n++ {
		if m.i >= len(m.argv) || m.isOptionShaped(m.argv[m.i]) {
			m.emit(errs.ParseMissingValue, spec.Owner,
				"%s requires %d values, got %d", displayName(spec), spec.Arity, n)

			return nil, false
		}

		raws = append(raws, registry.Raw{HasValue: true, Value: m.argv[m.i], ArgvIndex: m.i})
		m.i++
	}

	return raws, true
}

func (m *matcher) isOptionShaped(tok string) bool {
	if tok == "--" {
		return true
	}

	return classify.Classify(tok, m.reg).Kind == classify.KindOption
}

func (m *matcher) accumulateSingle(spec *registry.OptionSpec, raw registry.Raw) {
	if issue := convert.Accumulate(m.store, spec, raw, registry.SourceUser, true); issue != nil {
		m.issues = append(m.issues, *issue)
	}

	m.maybeEager(spec)
}

func (m *matcher) accumulateGroup(spec *registry.OptionSpec, raws []registry.Raw) {
	if issue := convert.AccumulateGroup(m.store, spec, raws, registry.SourceUser, true); issue != nil {
		m.issues = append(m.issues, *issue)
	}

	m.maybeEager(spec)
}

func (m *matcher) maybeEager(spec *registry.OptionSpec) {
	if !spec.Eager {
		return
	}

	v, ok := m.store.Values[spec.Owner]
	if !ok {
		return
	}

	if truthy, isBool := v.(bool); isBool && truthy {
		m.eagerTriggered = true
	}
}

func displayName(spec *registry.OptionSpec) string {
	if spec.BaseSwitch != "" {
		return spec.BaseSwitch
	}

	if len(spec.Switches) > 0 {
		return spec.Switches[0]
	}

	return spec.Owner
}
