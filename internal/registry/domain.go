package registry

// Domain is one declared domain (subcommand) or fragment. Fragments are
// never selectable; their RuleHooks are copied into every concrete domain
// that inherits them at freeze time.
type Domain struct {
	ID          string
	Label       string
	Description string
	Aliases     []string
	IsFragment  bool

	// Inherits names fragments (or other domains) whose scoped rules this
	// domain copies at freeze: any [Rule] or OptionSpec.DeclaredDomains
	// scoped to one of these ids is additionally scoped to this domain's
	// id once frozen (spec.md §4.1, "Fragment inheritance").
	Inherits []string
}
