package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/toolbelt/internal/messages"
	"github.com/ryan-rushton/toolbelt/internal/registry"
)

// Every registered tool also runs standalone as `toolbelt <id>`.
func init() {
	for _, c := range registry.Categories[1:] {
		rootCmd.AddGroup(&cobra.Group{ID: string(c), Title: c.Label() + ":"})
	}
	for _, t := range registry.All() {
		rootCmd.AddCommand(toolCommand(t))
	}
}

func toolCommand(t registry.Tool) *cobra.Command {
	return &cobra.Command{
		Use:     t.ID,
		Short:   t.Name,
		Long:    t.Description,
		GroupID: string(t.Category),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			p := tea.NewProgram(messages.Standalone(t.New(s.deps())), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
