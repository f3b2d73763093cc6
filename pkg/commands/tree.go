package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/commands/options"
	"tableflip.dev/codex/pkg/runner/tree"
)

func addTree(topLevel *cobra.Command) {
	to := &options.TopicOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	folded := false
	campaign := false

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print a topic's forest",
		Example: `
codex tree --topic characters
codex tree --all
codex tree --topic locations --folded
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tree.Tree{
				Service:  svc,
				Topic:    to.Topic,
				All:      to.All,
				Folded:   folded,
				Campaign: campaign,
				ShowID:   io.ShowID,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTopicArgs(cmd, to)
	options.AddAllTopicsArg(cmd, to)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&folded, "folded", false,
		"Respect the saved expand state instead of showing every node.")
	cmd.Flags().BoolVar(&campaign, "campaign", false,
		"Use the campaign view's expand state.")

	topLevel.AddCommand(cmd)
}
