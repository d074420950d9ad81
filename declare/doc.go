// Package declare loads an [argos.Args] registry from a data-driven JSON
// document instead of programmatic Bind calls — a realization of spec.md
// §1's "declarative" framing that still respects the Non-goals' ban on
// dynamic construction at parse time: the document is validated and fully
// applied once, before [argos.Args.Parse] freezes the registry, exactly
// like a sequence of [argos.Args.String]/[argos.Args.Int]/... calls would
// be.
package declare
