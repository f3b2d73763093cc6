package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func addTopics(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List the world's topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			topics, err := svc.Topics(context.Background())
			if err != nil {
				return err
			}
			for _, t := range topics {
				fmt.Println(t)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
