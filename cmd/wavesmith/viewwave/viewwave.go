package viewwave

import (
	"context"

	"github.com/flarebyte/wavesmith/internal/config"
	"github.com/flarebyte/wavesmith/internal/stage"
	"github.com/spf13/cobra"
)

var cfgPath string

// Cmd implements `wavesmith view_wave`: open the waveform viewer on the
// file a previous batch run produced. No directory preparation and no
// recompilation; a missing waveform surfaces through the tool's own error.
var Cmd = &cobra.Command{
	Use:           "view_wave",
	Short:         "View the generated waveform",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		prj, err := config.Resolve(cfgPath)
		if err != nil {
			return err
		}
		stages, err := stage.ActionStages("view_wave")
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		_, err = stage.RunSequence(ctx, stages, stage.NewEnvelope("view_wave", &prj), stage.Deps{})
		return err
	},
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to project config file (.cue)")
}
