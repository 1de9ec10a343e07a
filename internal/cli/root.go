// Package cli wires the emojipick command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is stamped by the release build.
var Version = "0.3.0"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "emojipick",
		Short:   "Emoji picker installer and terminal companion",
		Version: Version,
		Long: `emojipick prepares a Linux host for the Emoji Picker desktop app and
ships a terminal picker of its own.

  install   detect the distribution, install the GTK 4 binding and a
            clipboard helper through the native package manager, and
            verify the result
  doctor    report what install would find, without changing anything
  pick      search and copy emojis right in the terminal (default)`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation opens the picker.
			return runPick(cmd, args)
		},
	}
	root.AddCommand(newInstallCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newPickCmd())
	return root
}

// Execute runs the CLI. Any returned error has already been printed by
// the failing command or cobra itself.
func Execute() error {
	return NewRootCmd().Execute()
}
