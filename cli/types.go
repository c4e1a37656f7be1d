package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/compozy/fixturegen/internal/catalog"
)

func TypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the example types that can be previewed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := lipgloss.NewStyle()
			if isTerminal(cmd) {
				name = name.Bold(true).Foreground(lipgloss.Color("86"))
			}
			w := cmd.OutOrStdout()
			for _, e := range catalog.All() {
				if _, err := fmt.Fprintf(w, "%s  %s\n", name.Width(10).Render(e.Name), e.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
