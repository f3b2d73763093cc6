package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/commands/options"
	"tableflip.dev/codex/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TopicOptions{}
	eo := &options.EntryOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an entry to a topic",
		Example: `
codex add "Elf Queen" --topic characters
codex add "Throne Room" --topic locations --parent <id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("an entry needs a name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if to.Topic == "" {
				return errors.New("a topic is required, try --topic")
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Add{
				Service: svc,
				Topic:   to.Topic,
				Parent:  eo.Parent,
				Name:    strings.Join(args, " "),
				Type:    eo.Type,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTopicArgs(cmd, to)
	options.AddEntryArgs(cmd, eo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
