package root

import (
	"errors"
	"strings"

	"github.com/flarebyte/wavesmith/cmd/wavesmith/clean"
	"github.com/flarebyte/wavesmith/cmd/wavesmith/diagnose"
	"github.com/flarebyte/wavesmith/cmd/wavesmith/simulate"
	"github.com/flarebyte/wavesmith/cmd/wavesmith/version"
	"github.com/flarebyte/wavesmith/cmd/wavesmith/viewwave"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wavesmith.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wavesmith",
		Short: "CLI: Automate a QuestaSim simulation flow from compile to waveform",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided; this is still a
			// usage error, so the process must exit non-zero.
			_ = cmd.Help()
			return errors.New("missing command")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(simulate.Cmd)
	cmd.AddCommand(simulate.GuiCmd)
	cmd.AddCommand(viewwave.Cmd)
	cmd.AddCommand(clean.Cmd)
	cmd.AddCommand(diagnose.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		// Unrecognized token: show the command list before the error line.
		_ = cmd.Help()
	}
	return err
}
