package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/argos-cli/argos"
	"github.com/argos-cli/argos/version"
)

// demoArgs bundles the accessors newDemoArgs returns, so run and
// printResult don't need to re-derive owners with [argos.AccessorFor].
type demoArgs struct {
	*argos.Args

	showVersion argos.Accessor[bool]
	name        argos.Accessor[string]
	tries       argos.Accessor[int]
	verbose     argos.Accessor[bool]
	mode        argos.Accessor[string]
	predNeed    argos.Accessor[string]
	e1          argos.Accessor[bool]
	e2          argos.Accessor[bool]
	file        argos.Accessor[string]
	extras      argos.ListAccessor[int]
}

// newDemoArgs declares spec.md §8's literal end-to-end scenario: an "alpha"
// domain with --name/-t/--tries/-v/--verbose, a mode-conditional
// --pred-need, an exactlyOneWith(e1,e2) group, a <file> positional, and an
// <extras> int-list tail.
func newDemoArgs(trace *slog.Logger) *demoArgs {
	a := argos.NewArgs(
		argos.WithAppName("argosdemo"),
		argos.WithAppDescription("demonstrates the Argos argument-parsing library"),
		argos.WithAggregateErrors(),
		argos.WithTraceLogger(trace),
	)

	a.Domain("alpha", argos.WithDomainLabel("Alpha"), argos.WithDomainDescription("the primary demo domain"))

	d := &demoArgs{Args: a}

	d.showVersion = a.Bool("show-version",
		argos.WithSwitches("--version"), argos.WithHelp("print the build version and exit"), argos.Eager())

	d.name = a.String("name",
		argos.WithSwitches("--name"), argos.WithHelp("a name to greet"), argos.Domains("alpha"))

	d.tries = a.Int("tries",
		argos.WithSwitches("--tries", "-t"), argos.WithHelp("number of attempts"),
		argos.Domains("alpha"), argos.Default(1))

	d.verbose = a.Bool("verbose",
		argos.WithSwitches("--verbose", "-v"), argos.WithHelp("enable verbose logging"),
		argos.Negatable(), argos.Domains("alpha"))

	d.mode = a.Enum("mode", []string{"fast", "slow"},
		argos.WithSwitches("--mode"), argos.WithHelp("execution mode"),
		argos.Domains("alpha"), argos.Default("slow"))

	d.predNeed = a.String("pred-need",
		argos.WithSwitches("--pred-need"), argos.WithHelp("required when mode is fast"),
		argos.Domains("alpha"))

	d.e1 = a.Bool("e1", argos.WithSwitches("--e1"), argos.Domains("alpha"))
	d.e2 = a.Bool("e2", argos.WithSwitches("--e2"), argos.Domains("alpha"))

	d.file = a.PositionalString("file", argos.WithHelp("input file"), argos.Domains("alpha"))
	d.extras = a.PositionalIntList("extras", argos.WithHelp("extra integer arguments"), argos.Domains("alpha"))

	a.ExactlyOneOf("e1", "e2")
	a.RequireIfValue("pred-need", "mode", func(v any) bool {
		s, _ := v.(string)

		return s == "fast"
	})

	return d
}

// printVersionAndExit implements spec.md §4.4's eager short-circuit for a
// --version flag: the parseOrExit-style external collaborator this module
// doesn't otherwise implement, kept minimal and local to the demo.
func printVersionAndExit() {
	fmt.Fprintln(os.Stdout, version.Version)
	os.Exit(0)
}
