package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/commands/options"
	"tableflip.dev/codex/pkg/runner/tab"
)

func addTabs(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "List open tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tab.List{Service: svc, ShowID: io.ShowID}
			return s.Do(context.Background())
		},
	}
	options.AddShowIDArgs(cmd, io)

	activate := &cobra.Command{
		Use:   "activate [id]",
		Short: "Switch the active tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tab.Activate{Service: svc, ID: args[0]}
			return s.Do(context.Background())
		},
	}
	cmd.AddCommand(activate)

	closeCmd := &cobra.Command{
		Use:   "close [id]",
		Short: "Close a tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tab.Close{Service: svc, ID: args[0]}
			return s.Do(context.Background())
		},
	}
	cmd.AddCommand(closeCmd)

	topLevel.AddCommand(cmd)
}
