package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/commands/options"
	"tableflip.dev/codex/pkg/runner/nav"
)

func addNav(topLevel *cobra.Command) {
	for _, dir := range []struct {
		use     string
		short   string
		forward bool
	}{
		{"back", "Go back in the active tab's history", false},
		{"forward", "Go forward in the active tab's history", true},
	} {
		forward := dir.forward
		oo := &options.OutputOptions{}
		cmd := &cobra.Command{
			Use:   dir.use,
			Short: dir.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := loadService()
				if err != nil {
					return err
				}
				s := nav.Nav{Service: svc, Forward: forward}
				return oo.HandleError(s.Do(context.Background()))
			},
		}
		options.AddOutputArg(cmd, oo)
		topLevel.AddCommand(cmd)
	}
}
