package diagnose

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/flarebyte/wavesmith/internal/config"
	"github.com/flarebyte/wavesmith/internal/stage"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagAction string
)

// Cmd implements `wavesmith diagnose`: resolve the project config and print
// the exact command lines an action would run, without creating directories
// or spawning any external tool.
var Cmd = &cobra.Command{
	Use:           "diagnose",
	Short:         "Print the resolved command plan without executing it",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return runDiagnose(ctx, os.Stdout)
	},
}

func runDiagnose(ctx context.Context, w io.Writer) error {
	prj, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	stages, err := stage.PlanStages(flagAction)
	if err != nil {
		return err
	}
	env, err := stage.RunSequence(ctx, stages, stage.NewEnvelope(flagAction, &prj), stage.Deps{Out: w})
	if err != nil {
		return err
	}
	return renderPlan(w, env)
}

func renderPlan(w io.Writer, env stage.Envelope) error {
	meta := env.Meta
	if _, err := fmt.Fprintf(w, "action: %s\n", meta.Action); err != nil {
		return err
	}
	if meta.Project.Top != "" {
		if _, err := fmt.Fprintf(w, "top: %s\n", meta.Project.Top); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "sim dir: %s\n", meta.Project.SimDir); err != nil {
		return err
	}
	for _, src := range env.Sources {
		if _, err := fmt.Fprintf(w, "source: %s\n", src); err != nil {
			return err
		}
	}
	for _, inv := range env.Plan {
		if _, err := fmt.Fprintf(w, "plan: %s\n", inv.String()); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to project config file (.cue)")
	Cmd.Flags().StringVar(&flagAction, "action", "simulate", "Action to plan: simulate|simulate_gui|view_wave")
}
