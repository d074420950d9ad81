package argos

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/argos-cli/argos/internal/registry"
)

// Snapshot is the immutable, renderable description produced by
// [Args.Snapshot] (spec.md §6). It carries no behavior of its own: a
// Renderer, Translator, or Suggester collaborator consumes it to produce
// help text, localized strings, or "did you mean" output, none of which
// this package implements.
type Snapshot struct {
	Settings    SnapshotSettings    `json:"settings"`
	Domains     []SnapshotDomain    `json:"domains"`
	Options     []SnapshotOption    `json:"options"`
	Constraints SnapshotConstraints `json:"constraints"`
	Errors      []string            `json:"errors"`
}

// SnapshotSettings mirrors spec.md §6's Settings projection.
type SnapshotSettings struct {
	AppName                     string `json:"appName"`
	AppDescription              string `json:"appDescription"`
	DefaultLongPrefix           string `json:"defaultLongPrefix"`
	ClusterChar                 string `json:"clusterChar,omitempty"`
	ValueSeparators             string `json:"valueSeparators"`
	UnknownOptionsAsPositionals bool   `json:"unknownOptionsAsPositionals"`
	ArgumentSeparator           string `json:"argumentSeparator"`
}

// SnapshotDomain mirrors spec.md §6's Domains projection. Fragments are
// excluded: they are never selectable and carry no display fields.
type SnapshotDomain struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Aliases     []string `json:"aliases,omitempty"`
}

// SnapshotOption mirrors spec.md §6's Options/Positionals projection,
// combined into one shape distinguished by IsPositional/PositionalKind.
type SnapshotOption struct {
	Owner             string   `json:"owner"`
	Switches          []string `json:"switches,omitempty"`
	IsPositional      bool     `json:"isPositional"`
	PositionalKind    string   `json:"positionalKind,omitempty"`
	PositionalSeq     int      `json:"positionalSeq,omitempty"`
	BooleanFlag       bool     `json:"booleanFlag"`
	NegationPrefix    string   `json:"negationPrefix,omitempty"`
	RequiresValue     bool     `json:"requiresValue"`
	Repeatable        bool     `json:"repeatable"`
	DeclaredDomains   []string `json:"declaredDomains,omitempty"`
	Help              string   `json:"help,omitempty"`
	ExpectedDesc      []string `json:"expectedDesc,omitempty"`
	MinRequiredGlobal int      `json:"minRequiredGlobal,omitempty"`
	Hidden            bool     `json:"hidden"`
	DefaultValue      string   `json:"defaultValue,omitempty"`
	HasDefault        bool     `json:"hasDefault"`
	EnvVar            string   `json:"envVar,omitempty"`
}

// SnapshotConstraints mirrors spec.md §6's Constraints projection.
type SnapshotConstraints struct {
	Groups       []SnapshotGroup       `json:"groups,omitempty"`
	Conflicts    [][]string            `json:"conflicts,omitempty"`
	Conditionals []SnapshotConditional `json:"conditionals,omitempty"`
}

// SnapshotGroup describes one ExactlyOne/AtMostOne/AtLeastOne constraint.
type SnapshotGroup struct {
	Kind   string   `json:"kind"`
	Owners []string `json:"owners"`
}

// SnapshotConditional describes one Conditional constraint.
type SnapshotConditional struct {
	Kind         string   `json:"kind"`
	Target       string   `json:"target"`
	Refs         []string `json:"refs,omitempty"`
	PredicateRef string   `json:"predicateRef,omitempty"`
	Scope        []string `json:"scope,omitempty"`
}

// Snapshot produces the introspection description of this instance's
// frozen declaration and, when called after a parse, the last parse's
// accumulated error lines. Two successive calls after the same parse are
// structurally equal (spec.md §8's idempotence invariant): this method
// reads only frozen/immutable state and never mutates Args.
func (a *Args) Snapshot() Snapshot {
	reg := a.registry

	snap := Snapshot{
		Settings: SnapshotSettings{
			AppName:                     reg.Settings.AppName,
			AppDescription:              reg.Settings.AppDescription,
			DefaultLongPrefix:           reg.Settings.DefaultLongPrefix,
			ValueSeparators:             separatorString(reg.Settings.ValueSeparators),
			UnknownOptionsAsPositionals: reg.Settings.UnknownOptionsAsPositionals,
			ArgumentSeparator:           reg.Settings.ArgumentSeparator,
		},
	}

	if reg.Settings.ClusterEnabled {
		snap.Settings.ClusterChar = string(reg.Settings.ClusterChar)
	}

	for _, id := range reg.DomainOrder {
		d := reg.Domains[id]
		if d.IsFragment {
			continue
		}

		snap.Domains = append(snap.Domains, SnapshotDomain{
			ID: d.ID, Label: d.Label, Description: d.Description, Aliases: d.Aliases,
		})
	}

	for _, spec := range reg.Options {
		if spec.Hidden {
			continue
		}

		snap.Options = append(snap.Options, snapshotOption(reg, spec))
	}

	snap.Constraints = snapshotConstraints(reg)
	snap.Errors = a.lastErrorLines()

	return snap
}

func snapshotOption(reg *registry.Registry, spec *registry.OptionSpec) SnapshotOption {
	o := SnapshotOption{
		Owner:             spec.Owner,
		Switches:          spec.Switches,
		IsPositional:      spec.IsPositional(),
		BooleanFlag:       spec.BooleanFlag,
		NegationPrefix:    spec.NegationPrefix,
		RequiresValue:     spec.RequiresValue,
		Repeatable:        spec.Repeatable,
		DeclaredDomains:   domainList(spec.DeclaredDomains),
		Help:              spec.Help,
		ExpectedDesc:      spec.ExpectedDesc,
		MinRequiredGlobal: maxUnscopedRequiredMin(reg, spec.Owner),
		Hidden:            spec.Hidden,
		DefaultValue:      spec.DefaultValue,
		HasDefault:        spec.HasDefault,
		EnvVar:            spec.EnvVar,
	}

	if spec.IsPositional() {
		o.PositionalKind = positionalKindString(spec.PositionalKind)
		o.PositionalSeq = spec.PositionalSeq
	}

	return o
}

func positionalKindString(k registry.PositionalKind) string {
	switch k {
	case registry.PositionalSingle:
		return "single"
	case registry.PositionalList:
		return "list"
	case registry.PositionalSet:
		return "set"
	default:
		return ""
	}
}

func maxUnscopedRequiredMin(reg *registry.Registry, owner string) int {
	max := 0

	for _, rule := range reg.Rules {
		if rule.Kind != registry.RuleRequiredMin || rule.Owner != owner || rule.Scope != nil {
			continue
		}

		if rule.Min > max {
			max = rule.Min
		}
	}

	return max
}

func domainList(domains map[string]bool) []string {
	if domains == nil {
		return nil
	}

	out := make([]string, 0, len(domains))
	for id := range domains {
		out = append(out, id)
	}

	sort.Strings(out)

	return out
}

func snapshotConstraints(reg *registry.Registry) SnapshotConstraints {
	var out SnapshotConstraints

	for _, rule := range reg.Rules {
		switch rule.Kind {
		case registry.RuleGroup:
			out.Groups = append(out.Groups, SnapshotGroup{Kind: groupKindString(rule.GroupKind), Owners: rule.Owners})
		case registry.RuleConflicts:
			out.Conflicts = append(out.Conflicts, rule.Owners)
		case registry.RuleConditional:
			out.Conditionals = append(out.Conditionals, SnapshotConditional{
				Kind: conditionalKindString(rule.CondKind), Target: rule.TargetOwner,
				Refs: rule.Refs, PredicateRef: rule.PredicateRef, Scope: domainList(rule.Scope),
			})
		}
	}

	return out
}

func groupKindString(k registry.GroupKind) string {
	switch k {
	case registry.GroupExactlyOne:
		return "exactlyOne"
	case registry.GroupAtMostOne:
		return "atMostOne"
	case registry.GroupAtLeastOne:
		return "atLeastOne"
	default:
		return ""
	}
}

func conditionalKindString(k registry.ConditionalKind) string {
	switch k {
	case registry.CondAnyPresent:
		return "anyPresent"
	case registry.CondAllPresent:
		return "allPresent"
	case registry.CondAnyAbsent:
		return "anyAbsent"
	case registry.CondAllAbsent:
		return "allAbsent"
	case registry.CondValuePredicate:
		return "valuePredicate"
	case registry.CondAllowOnlyIfValuePredicate:
		return "allowOnlyIfValuePredicate"
	default:
		return ""
	}
}

func separatorString(seps map[byte]bool) string {
	out := make([]byte, 0, len(seps))
	for b, on := range seps {
		if on {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return string(out)
}

func (a *Args) lastErrorLines() []string {
	return a.errorLines
}

// WriteTo writes the snapshot as indented JSON, implementing [io.WriterTo]
// for direct use with an out-of-process Renderer collaborator.
func (s Snapshot) WriteTo(w io.Writer) (int64, error) {
	buf := &countingWriter{w: w}

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")

	if err := enc.Encode(s); err != nil {
		return buf.n, err
	}

	return buf.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
