// Package main provides argosdemo, a CLI built with Argos itself that
// exercises the exact end-to-end scenarios of spec.md §8: a concrete
// "alpha" domain with a name/tries/verbose option set, a <file> positional,
// an <extras> int-list tail, an exactlyOneWith(e1,e2) group, and a
// mode-conditional requirement on pred-need.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/argos-cli/argos"
	"github.com/argos-cli/argos/log"
	"github.com/argos-cli/argos/profile"
)

func main() {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "argosdemo [flags] -- <argos-args...>",
		Short:         "Demonstrates the Argos argument-parsing library",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(logCfg, profileCfg, args)
		},
	}

	logCfg.RegisterFlags(rootCmd.Flags())
	profileCfg.RegisterFlags(rootCmd.Flags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(logCfg *log.Config, profileCfg *profile.Config, args []string) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}

	profiler := profileCfg.NewProfiler()
	if err := profiler.Start(); err != nil {
		return fmt.Errorf("starting profiler: %w", err)
	}

	defer func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "stopping profiler: %v\n", stopErr)
		}
	}()

	d := newDemoArgs(slog.New(handler))

	if err := d.Parse(args); err != nil {
		var pe *argos.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintln(os.Stderr, pe.Error())
			os.Exit(2)
		}

		return err
	}

	if d.showVersion.Get() {
		printVersionAndExit()
	}

	printResult(d)

	return nil
}
