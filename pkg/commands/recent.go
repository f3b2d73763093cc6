package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/runner/recent"
)

func addRecent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently viewed entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := recent.Recent{Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
