package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/runner/expand"
)

func addExpand(topLevel *cobra.Command) {
	for _, mode := range []struct {
		use      string
		short    string
		collapse bool
	}{
		{"expand [id]", "Expand a node in the tree view", false},
		{"collapse [id]", "Collapse a node in the tree view", true},
	} {
		collapse := mode.collapse
		campaign := false
		cmd := &cobra.Command{
			Use:   mode.use,
			Short: mode.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := loadService()
				if err != nil {
					return err
				}
				s := expand.Expand{
					Service:  svc,
					ID:       args[0],
					Collapse: collapse,
					Campaign: campaign,
				}
				return s.Do(context.Background())
			},
		}
		cmd.Flags().BoolVar(&campaign, "campaign", false,
			"Use the campaign view's expand state.")
		topLevel.AddCommand(cmd)
	}
}
