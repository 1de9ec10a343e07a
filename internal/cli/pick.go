package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"emojipick/internal/config"
	"emojipick/internal/theme"
	"emojipick/internal/ui"
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Open the terminal emoji picker",
		Args:  cobra.NoArgs,
		RunE:  runPick,
	}
}

func runPick(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	th := theme.Detect(cfg.Theme)
	p := tea.NewProgram(ui.NewModel(cfg, th), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
