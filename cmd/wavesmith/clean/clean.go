package clean

import (
	"context"

	"github.com/flarebyte/wavesmith/internal/config"
	"github.com/flarebyte/wavesmith/internal/stage"
	"github.com/spf13/cobra"
)

var cfgPath string

// Cmd implements `wavesmith clean`: remove the simulation directory and all
// generated files. Succeeds when the directory is already gone.
var Cmd = &cobra.Command{
	Use:           "clean",
	Short:         "Clean the simulation directory",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		prj, err := config.Resolve(cfgPath)
		if err != nil {
			return err
		}
		stages, err := stage.ActionStages("clean")
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		_, err = stage.RunSequence(ctx, stages, stage.NewEnvelope("clean", &prj), stage.Deps{})
		return err
	},
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to project config file (.cue)")
}
