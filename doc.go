// Package argos is a declarative, type-safe command-line argument parser.
//
// An [Args] is built once, declaring switches, positionals, domains
// (subcommands), and constraints; [Args.Parse] then tokenizes, converts,
// validates, and constraint-checks an argv slice against that declaration.
// The heavy lifting — tokenizing, typed conversion, and constraint solving —
// lives in internal/match, internal/convert, and internal/constraint
// respectively; this package is the public builder and orchestration
// surface over them.
//
// Construct an [Args], bind options, then parse:
//
//	args := argos.NewArgs(argos.WithAppName("demo"))
//	name := args.String("name", argos.WithSwitches("--name", "-n"))
//	tries := args.Int("tries", argos.WithSwitches("-t", "--tries"), argos.Default(1))
//
//	if err := args.Parse(os.Args[1:]); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
//
//	fmt.Println(name.Get(), tries.Get())
//
// Configuration mistakes (duplicate switches, bad arity, frozen-registry
// mutation, ...) surface as [ConfigError] and should be treated as
// programmer bugs. User-facing parse failures surface as [ParseError] and
// carry every accumulated [errs.ParseIssue] when [WithAggregateErrors] is
// set.
package argos
