package cli

import (
	"github.com/spf13/cobra"

	"emojipick/internal/doctor"
	"emojipick/internal/installer"
)

func newDoctorCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment without installing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := doctor.New(cmd.OutOrStdout())
			d.Target = target
			return d.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&target, "target", installer.DefaultTarget,
		"picker script expected in the working directory")
	return cmd
}
