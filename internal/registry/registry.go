package registry

import (
	"strings"
	"unicode"

	"github.com/argos-cli/argos/internal/errs"
)

// Settings holds the recognized configuration options of spec.md §6.
type Settings struct {
	AppName        string
	AppDescription string

	UnknownOptionsAsPositionals bool

	DefaultLongPrefix string
	ShortPrefix       string
	ClusterChar       byte
	ClusterEnabled    bool
	ValueSeparators   map[byte]bool

	NegationPrefix string

	DidYouMean    bool
	DidYouMeanMax int

	AggregateErrors     bool
	MaxAggregatedErrors int

	ArgumentFilePrefix  byte
	ArgumentFileEnabled bool
	ArgumentSeparator   string
}

// DefaultSettings returns the spec.md-documented defaults.
func DefaultSettings() Settings {
	return Settings{
		AppName:                     "",
		UnknownOptionsAsPositionals: false,
		DefaultLongPrefix:           "--",
		ShortPrefix:                 "-",
		ClusterChar:                 '-',
		ClusterEnabled:              true,
		ValueSeparators:             map[byte]bool{'=': true, ':': true},
		NegationPrefix:              "no-",
		DidYouMean:                  true,
		DidYouMeanMax:               2,
		AggregateErrors:             false,
		MaxAggregatedErrors:         10,
		ArgumentFilePrefix:          '@',
		ArgumentFileEnabled:         true,
		ArgumentSeparator:           ", ",
	}
}

// Registry stores the frozen declaration: options, positionals, domains,
// constraints, and the switch→owner map.
type Registry struct {
	Settings Settings

	Options     []*OptionSpec
	ByOwner     map[string]*OptionSpec
	BySwitch    map[string]*OptionSpec
	Positionals []*OptionSpec

	Domains     map[string]*Domain
	DomainOrder []string

	Rules    []Rule
	ruleKeys map[string]bool

	frozen bool
}

// New creates an empty, unfrozen Registry with the given settings.
func New(settings Settings) *Registry {
	return &Registry{
		Settings: settings,
		ByOwner:  make(map[string]*OptionSpec),
		BySwitch: make(map[string]*OptionSpec),
		Domains:  make(map[string]*Domain),
		ruleKeys: make(map[string]bool),
	}
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool { return r.frozen }

func (r *Registry) checkMutable() error {
	if r.frozen {
		return errs.NewConfigError(errs.ConfigFrozen, "registry mutated after freeze")
	}

	return nil
}

// validSwitchPrefix enforces invariant 2: a non-alphanumeric prefix of length 1-2.
func validSwitchPrefix(sw string) bool {
	for _, n := range []int{2, 1} {
		if len(sw) <= n {
			continue
		}

		prefix := sw[:n]

		allNonAlnum := true

		for _, c := range prefix {
			if unicode.IsLetter(c) || unicode.IsDigit(c) {
				allNonAlnum = false

				break
			}
		}

		if allNonAlnum {
			return true
		}
	}

	return false
}

// RegisterOption validates and adds spec to the registry (invariant 1-4, 9).
func (r *Registry) RegisterOption(spec *OptionSpec) error {
	if err := r.checkMutable(); err != nil {
		return err
	}

	if spec.Owner == "" {
		return errs.NewConfigError(errs.ConfigMissingOwner, "option has no owner")
	}

	if _, exists := r.ByOwner[spec.Owner]; exists {
		return errs.NewConfigError(errs.ConfigDuplicateSwitch, "owner %q already registered", spec.Owner)
	}

	if spec.Arity < 1 {
		return errs.NewConfigError(errs.ConfigBadArity, "%q: arity must be >= 1", spec.Owner)
	}

	if spec.Arity > 1 {
		if !spec.RequiresValue {
			return errs.NewConfigError(errs.ConfigArityConflict,
				"%q: arity > 1 requires requiresValue", spec.Owner)
		}

		if spec.EnvVar != "" {
			return errs.NewConfigError(errs.ConfigArityConflict,
				"%q: arity > 1 cannot be combined with an environment fallback", spec.Owner)
		}
	}

	for _, sw := range spec.Switches {
		if sw == "--" {
			return errs.NewConfigError(errs.ConfigReservedSwitch, "%q: -- is reserved and can never be a switch", spec.Owner)
		}

		if !validSwitchPrefix(sw) {
			return errs.NewConfigError(errs.ConfigBadPrefix,
				"%q: switch %q must start with a 1-2 character non-alphanumeric prefix", spec.Owner, sw)
		}

		if _, exists := r.BySwitch[sw]; exists {
			return errs.NewConfigError(errs.ConfigDuplicateSwitch, "switch %q already registered", sw)
		}
	}

	if spec.IsPositional() {
		if err := r.checkPositionalOrdering(spec); err != nil {
			return err
		}

		spec.PositionalSeq = len(r.Positionals)
	}

	r.Options = append(r.Options, spec)
	r.ByOwner[spec.Owner] = spec

	for _, sw := range spec.Switches {
		r.BySwitch[sw] = spec
	}

	if spec.IsPositional() {
		r.Positionals = append(r.Positionals, spec)
	}

	return nil
}

// checkPositionalOrdering enforces invariant 4: at most one repeatable
// positional, and it must be last by declaration order. Since domains can
// each declare their own positional schema (DeclaredDomains), the check is
// scoped to positionals that could coexist under the same selected domain.
func (r *Registry) checkPositionalOrdering(spec *OptionSpec) error {
	if !spec.Repeats() {
		return nil
	}

	for _, existing := range r.Positionals {
		if !existing.Repeats() {
			continue
		}

		if domainsOverlap(existing.DeclaredDomains, spec.DeclaredDomains) {
			return errs.NewConfigError(errs.ConfigMultipleRepeatablePos,
				"%q and %q: at most one positional may be repeatable per domain", existing.Owner, spec.Owner)
		}
	}

	return nil
}

func domainsOverlap(a, b map[string]bool) bool {
	if a == nil || b == nil {
		return true // unrestricted overlaps with everything
	}

	for id := range a {
		if b[id] {
			return true
		}
	}

	return false
}

// RegisterDomain adds a domain or fragment declaration.
func (r *Registry) RegisterDomain(d *Domain) error {
	if err := r.checkMutable(); err != nil {
		return err
	}

	if d.ID == "" {
		return errs.NewConfigError(errs.ConfigBadDomainID, "domain has no id")
	}

	if _, exists := r.Domains[d.ID]; exists {
		return errs.NewConfigError(errs.ConfigBadDomainID, "domain %q already registered", d.ID)
	}

	if d.IsFragment && (d.Label != "" || d.Description != "" || len(d.Aliases) > 0) {
		return errs.NewConfigError(errs.ConfigFragmentDisplayFields,
			"fragment %q cannot declare label, description, or aliases", d.ID)
	}

	r.Domains[d.ID] = d
	r.DomainOrder = append(r.DomainOrder, d.ID)

	return nil
}

func (r *Registry) ruleKey(rule Rule) (string, error) {
	key := rule.Key()
	if r.ruleKeys[key] {
		return "", errs.NewConfigError(errs.ConfigDuplicateRule, "duplicate rule registration: %s", key)
	}

	return key, nil
}

// AddRequiredMin registers a RequiredMin constraint.
func (r *Registry) AddRequiredMin(owner string, min int, scope map[string]bool) error {
	if err := r.checkMutable(); err != nil {
		return err
	}

	if min < 1 {
		return errs.NewConfigError(errs.ConfigBadRequiredMin, "%q: required minimum must be >= 1", owner)
	}

	rule := Rule{Kind: RuleRequiredMin, Owner: owner, Min: min, Scope: scope}

	key, err := r.ruleKey(rule)
	if err != nil {
		return err
	}

	r.ruleKeys[key] = true
	r.Rules = append(r.Rules, rule)

	return nil
}

// AddConditional registers a Conditional constraint.
func (r *Registry) AddConditional(targetOwner string, kind ConditionalKind, refs []string, predicateRef string, predicate func(any) bool, scope map[string]bool) error {
	if err := r.checkMutable(); err != nil {
		return err
	}

	for _, ref := range refs {
		if ref == targetOwner {
			return errs.NewConfigError(errs.ConfigSelfReference, "%q: conditional cannot reference itself", targetOwner)
		}
	}

	if predicateRef == targetOwner {
		return errs.NewConfigError(errs.ConfigSelfReference, "%q: conditional predicate cannot reference itself", targetOwner)
	}

	rule := Rule{
		Kind: RuleConditional, TargetOwner: targetOwner, CondKind: kind,
		Refs: refs, PredicateRef: predicateRef, Predicate: predicate, Scope: scope,
	}

	key, err := r.ruleKey(rule)
	if err != nil {
		return err
	}

	r.ruleKeys[key] = true
	r.Rules = append(r.Rules, rule)

	return nil
}

// AddGroup registers a Group constraint over >= 2 owners.
func (r *Registry) AddGroup(kind GroupKind, owners []string, scope map[string]bool) error {
	if err := r.checkMutable(); err != nil {
		return err
	}

	if len(owners) < 2 {
		return errs.NewConfigError(errs.ConfigBadRequiredMin, "group constraint needs at least 2 owners")
	}

	rule := Rule{Kind: RuleGroup, GroupKind: kind, Owners: owners, Scope: scope}

	key, err := r.ruleKey(rule)
	if err != nil {
		return err
	}

	r.ruleKeys[key] = true
	r.Rules = append(r.Rules, rule)

	return nil
}

// AddConflicts registers a Conflicts constraint over >= 2 owners.
func (r *Registry) AddConflicts(owners []string, scope map[string]bool) error {
	if err := r.checkMutable(); err != nil {
		return err
	}

	if len(owners) < 2 {
		return errs.NewConfigError(errs.ConfigBadRequiredMin, "conflicts constraint needs at least 2 owners")
	}

	rule := Rule{Kind: RuleConflicts, Owners: owners, Scope: scope}

	key, err := r.ruleKey(rule)
	if err != nil {
		return err
	}

	r.ruleKeys[key] = true
	r.Rules = append(r.Rules, rule)

	return nil
}

// ConcreteDomains returns the ids of all non-fragment declared domains, in
// declaration order.
func (r *Registry) ConcreteDomains() []string {
	var out []string

	for _, id := range r.DomainOrder {
		if !r.Domains[id].IsFragment {
			out = append(out, id)
		}
	}

	return out
}

// ResolveDomain finds the concrete domain matching a bare token by id or
// alias.
func (r *Registry) ResolveDomain(tok string) (string, bool) {
	for _, id := range r.DomainOrder {
		d := r.Domains[id]
		if d.IsFragment {
			continue
		}

		if d.ID == tok {
			return d.ID, true
		}

		for _, alias := range d.Aliases {
			if alias == tok {
				return d.ID, true
			}
		}
	}

	return "", false
}

// HasDomains reports whether any concrete domain was declared.
func (r *Registry) HasDomains() bool {
	for _, id := range r.DomainOrder {
		if !r.Domains[id].IsFragment {
			return true
		}
	}

	return false
}

// ActivePositionals returns the positional schema applicable under the
// selected domain (or all positionals if domain is "").
func (r *Registry) ActivePositionals(domain string) []*OptionSpec {
	var out []*OptionSpec

	for _, p := range r.Positionals {
		if p.DeclaredDomains == nil || domain == "" || p.DeclaredDomains[domain] {
			out = append(out, p)
		}
	}

	return out
}

// SplitLongAttached splits a "--name=value" style token. ok is false if tok
// does not start with a registered long prefix or carries no recognized
// separator.
func (r *Registry) SplitLongAttached(tok string) (name, value string, ok bool) {
	prefix := r.Settings.DefaultLongPrefix
	if !strings.HasPrefix(tok, prefix) {
		return "", "", false
	}

	body := tok[len(prefix):]
	for i := 0; i < len(body); i++ {
		if r.Settings.ValueSeparators[body[i]] {
			return prefix + body[:i], body[i+1:], true
		}
	}

	return "", "", false
}
