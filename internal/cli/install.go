package cli

import (
	"github.com/spf13/cobra"

	"emojipick/internal/installer"
)

func newInstallCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the picker's dependencies via the native package manager",
		Long: `install detects the distribution from /etc/os-release, runs the
matching package-manager commands (they request elevation with sudo;
do not run this as root), marks the picker script executable and
smoke-tests the installed GTK 4 binding.

A missing clipboard helper is reported as a warning; every other
failure aborts the run with a non-zero exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ins := installer.New(cmd.OutOrStdout())
			ins.Target = target
			if err := ins.Run(cmd.Context()); err != nil {
				return err
			}
			return printUsage(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&target, "target", installer.DefaultTarget,
		"picker script to prepare in the working directory")
	return cmd
}
