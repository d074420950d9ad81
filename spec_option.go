package argos

import "github.com/argos-cli/argos/internal/registry"

// SpecOption configures one declared option or positional at bind time, in
// the same functional-options style as [Option] ([WithSwitches], [Required],
// [Eager], ...).
type SpecOption func(*pendingOption)

// pendingOption carries bind-time state that does not belong on
// [registry.OptionSpec] itself (required-minimum and domain restriction are
// only resolvable into registry rules once the owner is known, which
// happens when the builder method — [Args.String], [Args.Int], ...— runs).
type pendingOption struct {
	spec     *registry.OptionSpec
	reqMin   int
	scope    map[string]bool
	eagerSet bool

	defaultValue any
	hasDefault   bool
}

// WithSwitches sets the surface tokens for an option (e.g. "--name", "-n").
// The first long-prefixed switch (or the first switch if none is long)
// becomes the base switch shown in error messages. Positionals never take
// this option.
func WithSwitches(switches ...string) SpecOption {
	return func(p *pendingOption) {
		p.spec.Switches = switches
		p.spec.BaseSwitch = baseSwitchOf(switches)
	}
}

func baseSwitchOf(switches []string) string {
	for _, sw := range switches {
		if len(sw) > 1 && sw[0] == '-' && sw[1] == '-' {
			return sw
		}
	}

	if len(switches) > 0 {
		return switches[0]
	}

	return ""
}

// WithEnv declares the environment variable consulted when the option has
// no occurrence (spec.md §4.6). Not combinable with an arity > 1 option.
func WithEnv(name string) SpecOption {
	return func(p *pendingOption) { p.spec.EnvVar = name }
}

// Required declares the option mandatory (required-minimum of 1) within the
// given scope of domain ids, or globally if scope is empty.
func Required(scope ...string) SpecOption {
	return func(p *pendingOption) {
		if p.reqMin < 1 {
			p.reqMin = 1
		}

		p.scope = scopeSet(scope)
	}
}

// AtLeast declares the option must occur at least n times within scope, or
// globally if scope is empty.
func AtLeast(n int, scope ...string) SpecOption {
	return func(p *pendingOption) {
		p.reqMin = n
		p.scope = scopeSet(scope)
	}
}

func scopeSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}

	return out
}

// Eager marks the option as short-circuiting: when its effective value
// parses truthy, the remainder of argv is skipped and the constraint
// solver is never run (spec.md §4.4).
func Eager() SpecOption {
	return func(p *pendingOption) { p.spec.Eager = true; p.eagerSet = true }
}

// Negatable enables the `--no-<name>` alias for a boolean option, using the
// registry's configured negation prefix.
func Negatable() SpecOption {
	return func(p *pendingOption) { p.spec.NegationPrefix = "no-" }
}

// Hidden excludes the option from introspection snapshots.
func Hidden() SpecOption {
	return func(p *pendingOption) { p.spec.Hidden = true }
}

// Repeatable permits multiple occurrences of an otherwise-Single option
// without a "duplicate" error.
func Repeatable() SpecOption {
	return func(p *pendingOption) { p.spec.Repeatable = true }
}

// Domains restricts the option to the given concrete or fragment domain
// ids (spec.md §3's declaredDomains).
func Domains(ids ...string) SpecOption {
	return func(p *pendingOption) { p.spec.DeclaredDomains = scopeSet(ids) }
}

// InputPrompt declares the interactive-prompt fallback used when a
// [Required] option has zero occurrences at constraint-solve time.
func InputPrompt(prompt string, hidden, confirm bool, mismatchMessage string, maxRetries int) SpecOption {
	return func(p *pendingOption) {
		p.spec.Input = &registry.InputConfig{
			Prompt: prompt, Hidden: hidden, Confirm: confirm,
			MismatchMessage: mismatchMessage, MaxRetries: maxRetries,
		}
	}
}

// ExpectedDesc sets the type/enum descriptor tokens used in invalid-value
// error messages.
func ExpectedDesc(tokens ...string) SpecOption {
	return func(p *pendingOption) { p.spec.ExpectedDesc = tokens }
}

// WithHelp sets the option's one-line help text, surfaced in
// [Args.Snapshot] for a Renderer collaborator to display.
func WithHelp(help string) SpecOption {
	return func(p *pendingOption) { p.spec.Help = help }
}
