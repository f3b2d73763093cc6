package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/commands/options"
	"tableflip.dev/codex/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	to := &options.TopicOptions{}
	oo := &options.OutputOptions{}
	parent := ""
	top := false
	listParents := false

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Move an entry to a new parent",
		Example: `
codex move <id> --topic characters --parent <other-id>
codex move <id> --topic characters --top
codex move <id> --topic characters --list-parents
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to.Topic == "" {
				return errors.New("a topic is required, try --topic")
			}
			if !top && !listParents && parent == "" {
				return errors.New("pick a destination: --parent, --top, or --list-parents")
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			if listParents {
				s := move.ListParents{Service: svc, Topic: to.Topic, ID: args[0]}
				return oo.HandleError(s.Do(context.Background()))
			}
			s := move.Move{Service: svc, Topic: to.Topic, ID: args[0], Parent: parent}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTopicArgs(cmd, to)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "The new parent entry.")
	cmd.Flags().BoolVar(&top, "top", false, "Move the entry to the top level.")
	cmd.Flags().BoolVar(&listParents, "list-parents", false,
		"List the entries this one could move under.")

	topLevel.AddCommand(cmd)
}
