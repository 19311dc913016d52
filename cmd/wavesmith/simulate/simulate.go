package simulate

import (
	"context"

	"github.com/flarebyte/wavesmith/internal/config"
	"github.com/flarebyte/wavesmith/internal/stage"
	"github.com/spf13/cobra"
)

var cfgPath string

// Cmd implements `wavesmith simulate`: compile everything and run the
// simulator to completion in batch mode.
var Cmd = &cobra.Command{
	Use:           "simulate",
	Short:         "Run the simulation in batch mode",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd.Context(), "simulate")
	},
}

// GuiCmd implements `wavesmith simulate_gui`: same compile steps, then an
// interactive simulator session that only starts signal logging.
var GuiCmd = &cobra.Command{
	Use:           "simulate_gui",
	Short:         "Run the simulation in GUI mode",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd.Context(), "simulate_gui")
	},
}

func runAction(ctx context.Context, action string) error {
	prj, err := config.Resolve(cfgPath)
	if err != nil {
		return err
	}
	stages, err := stage.ActionStages(action)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = stage.RunSequence(ctx, stages, stage.NewEnvelope(action, &prj), stage.Deps{})
	return err
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to project config file (.cue)")
	GuiCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to project config file (.cue)")
}
