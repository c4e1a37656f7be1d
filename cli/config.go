package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/compozy/fixturegen/pkg/config"
)

// ConfigCmd prints the effective configuration and the layer each key came from.
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta, ok := cmd.Context().Value(metadataCtxKey).(config.Metadata)
			if !ok {
				return fmt.Errorf("configuration was not loaded")
			}
			key := lipgloss.NewStyle()
			source := lipgloss.NewStyle()
			if isTerminal(cmd) {
				key = key.Bold(true).Foreground(lipgloss.Color("86"))
				source = source.Faint(true)
			}
			keys := slices.Sorted(maps.Keys(meta.Values))
			w := cmd.OutOrStdout()
			for _, k := range keys {
				from := config.SourceDefault
				if s, ok := meta.Sources[k]; ok {
					from = s
				}
				line := fmt.Sprintf("%s  %v  %s\n",
					key.Width(32).Render(k), meta.Values[k], source.Render("("+from.String()+")"))
				if _, err := fmt.Fprint(w, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
