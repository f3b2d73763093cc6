package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/commands/options"
	"tableflip.dev/codex/pkg/runner/rm"
)

func addRemove(topLevel *cobra.Command) {
	to := &options.TopicOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Short:   "Remove an entry, reflowing its children to its parent",
		Aliases: []string{"remove", "delete"},
		Example: `
codex rm <id> --topic characters
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to.Topic == "" {
				return errors.New("a topic is required, try --topic")
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := rm.Remove{Service: svc, Topic: to.Topic, ID: args[0]}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTopicArgs(cmd, to)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
