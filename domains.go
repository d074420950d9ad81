package argos

import "github.com/argos-cli/argos/internal/registry"

// DomainOption configures a declared [Args.Domain] or [Args.Fragment].
type DomainOption func(*registry.Domain)

// WithDomainLabel sets a concrete domain's display label.
func WithDomainLabel(label string) DomainOption {
	return func(d *registry.Domain) { d.Label = label }
}

// WithDomainDescription sets a concrete domain's display description.
func WithDomainDescription(desc string) DomainOption {
	return func(d *registry.Domain) { d.Description = desc }
}

// WithDomainAliases adds extra tokens that resolve to a concrete domain.
func WithDomainAliases(aliases ...string) DomainOption {
	return func(d *registry.Domain) { d.Aliases = aliases }
}

// WithInherits declares the fragments (or other domains) whose rules this
// domain inherits, expanded at [Args.Parse]'s freeze step.
func WithInherits(ids ...string) DomainOption {
	return func(d *registry.Domain) { d.Inherits = ids }
}

// Domain declares a concrete, selectable domain (subcommand).
func (a *Args) Domain(id string, opts ...DomainOption) {
	d := &registry.Domain{ID: id}
	for _, opt := range opts {
		opt(d)
	}

	if err := a.registry.RegisterDomain(d); err != nil {
		panic(wrapConfigError(err))
	}
}

// Fragment declares a non-selectable rule template that concrete domains
// can inherit via [WithInherits].
func (a *Args) Fragment(id string, opts ...DomainOption) {
	d := &registry.Domain{ID: id, IsFragment: true}
	for _, opt := range opts {
		opt(d)
	}

	if err := a.registry.RegisterDomain(d); err != nil {
		panic(wrapConfigError(err))
	}
}

// ExactlyOneOf declares that exactly one of owners may be present.
func (a *Args) ExactlyOneOf(owners ...string) {
	a.addGroup(registry.GroupExactlyOne, owners, nil)
}

// AtMostOneOf declares that at most one of owners may be present.
func (a *Args) AtMostOneOf(owners ...string) {
	a.addGroup(registry.GroupAtMostOne, owners, nil)
}

// AtLeastOneOf declares that at least one of owners must be present.
func (a *Args) AtLeastOneOf(owners ...string) {
	a.addGroup(registry.GroupAtLeastOne, owners, nil)
}

func (a *Args) addGroup(kind registry.GroupKind, owners []string, scope []string) {
	if err := a.registry.AddGroup(kind, owners, scopeSet(scope)); err != nil {
		panic(wrapConfigError(err))
	}
}

// Conflicts declares that at most one of owners may be present; violation
// renders as "Conflicting options" rather than a group-shaped message.
func (a *Args) Conflicts(owners ...string) {
	if err := a.registry.AddConflicts(owners, nil); err != nil {
		panic(wrapConfigError(err))
	}
}

// RequireIfAnyPresent requires target when any of refs is present.
func (a *Args) RequireIfAnyPresent(target string, refs ...string) {
	a.addConditional(target, registry.CondAnyPresent, refs, "", nil)
}

// RequireIfAllPresent requires target when every one of refs is present.
func (a *Args) RequireIfAllPresent(target string, refs ...string) {
	a.addConditional(target, registry.CondAllPresent, refs, "", nil)
}

// RequireIfAnyAbsent requires target when any of refs is absent.
func (a *Args) RequireIfAnyAbsent(target string, refs ...string) {
	a.addConditional(target, registry.CondAnyAbsent, refs, "", nil)
}

// RequireIfAllAbsent requires target when every one of refs is absent.
func (a *Args) RequireIfAllAbsent(target string, refs ...string) {
	a.addConditional(target, registry.CondAllAbsent, refs, "", nil)
}

// RequireIfValue requires target when predicate(value of predicateRef) is
// true (spec.md §8 scenario 6's `require pred-need if mode == "fast"`).
func (a *Args) RequireIfValue(target, predicateRef string, predicate func(any) bool) {
	a.addConditional(target, registry.CondValuePredicate, nil, predicateRef, predicate)
}

// AllowOnlyIfValue rejects target's presence unless
// predicate(value of predicateRef) is true.
func (a *Args) AllowOnlyIfValue(target, predicateRef string, predicate func(any) bool) {
	a.addConditional(target, registry.CondAllowOnlyIfValuePredicate, nil, predicateRef, predicate)
}

func (a *Args) addConditional(target string, kind registry.ConditionalKind, refs []string, predicateRef string, predicate func(any) bool) {
	if err := a.registry.AddConditional(target, kind, refs, predicateRef, predicate, nil); err != nil {
		panic(wrapConfigError(err))
	}
}
