package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rustadex/stderr/pkg/stderr"
	"github.com/rustadex/stderr/pkg/trace"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Walk a nested call trace",
	Long: `Runs a three-level nested unit of work under trace spans,
including one branch that fails partway through. Enable output with
--trace; the exit lines still fire on the failing path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		err := log.Span("resolve", func(s *trace.Scope) error {
			_ = s.Step("loading manifest")
			_ = s.StepFound("3 targets")

			if err := buildTarget(log, "alpha"); err != nil {
				_ = s.StepSub("alpha failed, continuing")
			}
			if err := buildTarget(log, "beta"); err != nil {
				return err
			}
			_ = s.StepDone("all targets resolved")
			return nil
		})
		if err != nil {
			return err
		}

		_ = log.Okay("trace demo finished")
		return nil
	},
}

func buildTarget(log *stderr.Stderr, name string) error {
	return log.Span("build:"+name, func(s *trace.Scope) error {
		_ = s.Step("compiling")
		if name == "alpha" {
			// exercise the guaranteed-exit path
			return errors.New("alpha is broken on purpose")
		}
		return log.Span("link:"+name, func(link *trace.Scope) error {
			_ = link.Step("collecting objects")
			_ = link.StepAdd("libcore")
			return nil
		})
	})
}
