package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/commands/options"
	"tableflip.dev/codex/pkg/runner/open"
)

func addOpen(topLevel *cobra.Command) {
	tb := &options.TabOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "open [id]",
		Short: "Open an entry in a tab",
		Example: `
codex open <id>
codex open <id> --in-place
codex open <id> --background
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := open.Open{
				Service:    svc,
				ContentID:  args[0],
				InPlace:    tb.InPlace,
				Background: tb.Background,
				NoHistory:  tb.NoHistory,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTabArgs(cmd, tb)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
