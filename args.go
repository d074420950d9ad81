package argos

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

// Args is a declared set of options, positionals, domains, and
// constraints, plus the parse-scoped state ([convert.Store], selected
// domain, accumulated issues) produced by the most recent [Args.Parse].
//
// Options are declared once via [Args.String], [Args.Int], [Args.Bool],
// and friends; declaring after the first [Args.Parse] is a [ConfigError]
// (the registry freezes at that point). Re-parsing the same instance
// clears parse-scoped state but keeps the frozen declaration; [Args.Clone]
// exposes that as an explicit, named operation.
type Args struct {
	settings Settings
	registry *registry.Registry
	platform platform.Platform
	trace    *slog.Logger

	store          *convert.Store
	selectedDomain string
	parsed         bool
	errorLines     []string

	configFilePath string
}

// NewArgs builds an unfrozen [Args] with the given [Option]s applied.
func NewArgs(opts ...Option) *Args {
	a := &Args{settings: NewSettings(), platform: platform.NewOS(), store: convert.NewStore()}

	for _, opt := range opts {
		opt(a)
	}

	a.registry = registry.New(a.settings)

	return a
}

// SetAppName overrides the application name used in introspection
// snapshots after construction (e.g. once a [declare] document naming the
// app has been loaded).
func (a *Args) SetAppName(name string) {
	a.settings.AppName = name
	a.registry.Settings.AppName = name
}

func (a *Args) traceLog(msg string, args ...any) {
	if a.trace != nil {
		a.trace.Debug(msg, args...)
	}
}

func (a *Args) newPending(owner string, kind registry.ValueKind, booleanFlag, requiresValue bool) *pendingOption {
	return &pendingOption{
		spec: &registry.OptionSpec{
			Owner:         owner,
			ValueKind:     kind,
			Arity:         1,
			BooleanFlag:   booleanFlag,
			RequiresValue: requiresValue,
		},
	}
}

func (a *Args) applyOptions(p *pendingOption, opts []SpecOption) {
	for _, opt := range opts {
		opt(p)
	}
}

// bind finalizes a pendingOption: synthesizes negation switches, registers
// the spec, and registers any deferred required-minimum rule. A
// [ConfigError] here is a programmer bug — it should not be swallowed.
func (a *Args) bind(p *pendingOption) error {
	spec := p.spec

	if p.hasDefault {
		spec.HasDefault = true
		spec.DefaultValue = fmt.Sprintf("%v", p.defaultValue)
	}

	if spec.NegationPrefix != "" {
		if a.settings.NegationPrefix != "" {
			spec.NegationPrefix = a.settings.NegationPrefix
		}

		negMap := make(map[string]bool)

		var negSwitches []string

		prefix := a.settings.DefaultLongPrefix

		for _, sw := range spec.Switches {
			if !strings.HasPrefix(sw, prefix) {
				continue
			}

			negSw := prefix + spec.NegationPrefix + sw[len(prefix):]
			negSwitches = append(negSwitches, negSw)
			negMap[negSw] = true
		}

		spec.Switches = append(spec.Switches, negSwitches...)
		spec.NegationSwitches = negMap
	}

	if err := a.registry.RegisterOption(spec); err != nil {
		return wrapConfigError(err)
	}

	if p.reqMin > 0 {
		if err := a.registry.AddRequiredMin(spec.Owner, p.reqMin, p.scope); err != nil {
			return wrapConfigError(err)
		}
	}

	a.traceLog("bound option", "owner", spec.Owner, "switches", spec.Switches)

	return nil
}

// String declares a single string-valued option.
func (a *Args) String(owner string, opts ...SpecOption) Accessor[string] {
	p := a.newPending(owner, registry.KindSingle, false, true)
	a.applyOptions(p, opts)

	def, hasDef := typedDefault[string](p)
	p.spec.Converter = convert.StringConverter(def, hasDef)

	a.mustBind(p)

	return Accessor[string]{args: a, owner: owner}
}

// Int declares a single int-valued option.
func (a *Args) Int(owner string, opts ...SpecOption) Accessor[int] {
	p := a.newPending(owner, registry.KindSingle, false, true)
	a.applyOptions(p, opts)

	def, hasDef := typedDefault[int](p)
	p.spec.Converter = convert.IntConverter(def, hasDef)
	p.spec.ExpectedDesc = withFallback(p.spec.ExpectedDesc, "an integer")

	a.mustBind(p)

	return Accessor[int]{args: a, owner: owner}
}

// Float declares a single float64-valued option.
func (a *Args) Float(owner string, opts ...SpecOption) Accessor[float64] {
	p := a.newPending(owner, registry.KindSingle, false, true)
	a.applyOptions(p, opts)

	def, hasDef := typedDefault[float64](p)
	p.spec.Converter = convert.FloatConverter(def, hasDef)
	p.spec.ExpectedDesc = withFallback(p.spec.ExpectedDesc, "a number")

	a.mustBind(p)

	return Accessor[float64]{args: a, owner: owner}
}

// Bool declares a boolean flag: present alone it means true, optionally
// followed by a boolean literal, and — with [Negatable] — aliased as
// `--no-<name>` to force false.
func (a *Args) Bool(owner string, opts ...SpecOption) Accessor[bool] {
	p := a.newPending(owner, registry.KindSingle, true, false)
	a.applyOptions(p, opts)

	def, hasDef := typedDefault[bool](p)
	p.spec.Converter = convert.BoolConverter(def, hasDef)
	p.spec.ExpectedDesc = withFallback(p.spec.ExpectedDesc, "true|false|yes|no|on|off|1|0")

	a.mustBind(p)

	return Accessor[bool]{args: a, owner: owner}
}

// Enum declares a single string-valued option restricted to candidates.
func (a *Args) Enum(owner string, candidates []string, opts ...SpecOption) Accessor[string] {
	p := a.newPending(owner, registry.KindSingle, false, true)
	a.applyOptions(p, opts)

	def, hasDef := typedDefault[string](p)
	p.spec.Converter = convert.EnumConverter(candidates, def, hasDef)
	p.spec.ExpectedDesc = withFallback(p.spec.ExpectedDesc, candidates...)

	a.mustBind(p)

	return Accessor[string]{args: a, owner: owner}
}

// StringList declares a repeated string-valued option whose occurrences
// accumulate in argv order.
func (a *Args) StringList(owner string, opts ...SpecOption) ListAccessor[string] {
	p := a.newPending(owner, registry.KindList, false, true)
	p.spec.Repeatable = true
	a.applyOptions(p, opts)
	p.spec.Converter = convert.StringConverter("", false)

	a.mustBind(p)

	return ListAccessor[string]{args: a, owner: owner}
}

// StringSet declares a repeated string-valued option deduplicated by
// first-insertion order.
func (a *Args) StringSet(owner string, opts ...SpecOption) ListAccessor[string] {
	p := a.newPending(owner, registry.KindSet, false, true)
	p.spec.Repeatable = true
	a.applyOptions(p, opts)
	p.spec.Converter = convert.StringConverter("", false)

	a.mustBind(p)

	return ListAccessor[string]{args: a, owner: owner}
}

// IntList declares a repeated int-valued option whose occurrences
// accumulate in argv order.
func (a *Args) IntList(owner string, opts ...SpecOption) ListAccessor[int] {
	p := a.newPending(owner, registry.KindList, false, true)
	p.spec.Repeatable = true
	a.applyOptions(p, opts)
	p.spec.Converter = convert.IntConverter(0, false)
	p.spec.ExpectedDesc = withFallback(p.spec.ExpectedDesc, "an integer")

	a.mustBind(p)

	return ListAccessor[int]{args: a, owner: owner}
}

// IntGroup declares a single-invocation, arity-N option: one switch that
// consumes exactly arity unconditional following values and converts each
// to int (spec.md §4.4's `arity > 1` branch, §4.5's arity grouping). Not
// combinable with [WithEnv] — the registry rejects that combination at
// bind time.
func (a *Args) IntGroup(owner string, arity int, opts ...SpecOption) ListAccessor[int] {
	p := a.newPending(owner, registry.KindSingle, false, true)
	p.spec.Arity = arity
	a.applyOptions(p, opts)

	conv := convert.IntConverter(0, false)
	p.spec.Converter = conv
	p.spec.GroupParser = convert.DefaultGroupParser(conv, arity, p.spec.ElementValidators)
	p.spec.ExpectedDesc = withFallback(p.spec.ExpectedDesc, "an integer")

	a.mustBind(p)

	return ListAccessor[int]{args: a, owner: owner}
}

// PositionalString declares a Single positional slot.
func (a *Args) PositionalString(owner string, opts ...SpecOption) Accessor[string] {
	p := a.newPending(owner, registry.KindSingle, false, true)
	p.spec.PositionalKind = registry.PositionalSingle
	a.applyOptions(p, opts)

	def, hasDef := typedDefault[string](p)
	p.spec.Converter = convert.StringConverter(def, hasDef)

	a.mustBind(p)

	return Accessor[string]{args: a, owner: owner}
}

// PositionalStringList declares the trailing repeatable List positional.
func (a *Args) PositionalStringList(owner string, opts ...SpecOption) ListAccessor[string] {
	p := a.newPending(owner, registry.KindList, false, true)
	p.spec.PositionalKind = registry.PositionalList
	a.applyOptions(p, opts)
	p.spec.Converter = convert.StringConverter("", false)

	a.mustBind(p)

	return ListAccessor[string]{args: a, owner: owner}
}

// PositionalIntList declares the trailing repeatable List positional,
// converting each token to int (spec.md §8 scenario 1's `<extras>`).
func (a *Args) PositionalIntList(owner string, opts ...SpecOption) ListAccessor[int] {
	p := a.newPending(owner, registry.KindList, false, true)
	p.spec.PositionalKind = registry.PositionalList
	a.applyOptions(p, opts)
	p.spec.Converter = convert.IntConverter(0, false)
	p.spec.ExpectedDesc = withFallback(p.spec.ExpectedDesc, "an integer")

	a.mustBind(p)

	return ListAccessor[int]{args: a, owner: owner}
}

// mustBind panics on a [ConfigError]: per spec.md §7, configuration
// mistakes are programmer bugs, never user-facing failures, and this
// package's builder methods have no error return to propagate them
// through (mirroring the teacher's RegisterFlags-by-reference convention,
// which also cannot fail at the call site).
func (a *Args) mustBind(p *pendingOption) {
	if err := a.bind(p); err != nil {
		panic(err)
	}
}

func typedDefault[T any](p *pendingOption) (T, bool) {
	if !p.hasDefault {
		var zero T

		return zero, false
	}

	v, ok := p.defaultValue.(T)

	return v, ok
}

func withFallback(existing []string, fallback ...string) []string {
	if len(existing) > 0 {
		return existing
	}

	return fallback
}

// Default declares the value used when an option has no occurrence at all
// (spec.md §4.7). T must match the builder method's value type.
func Default[T any](v T) SpecOption {
	return func(p *pendingOption) { p.defaultValue = v; p.hasDefault = true }
}
