package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/codex/pkg/app"
	"tableflip.dev/codex/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "codex",
		Short: "Worldbuilding topics, entries, and tabs on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addMove(topLevel)
	addRemove(topLevel)
	addTree(topLevel)
	addTopics(topLevel)
	addOpen(topLevel)
	addNav(topLevel)
	addTabs(topLevel)
	addRecent(topLevel)
	addExpand(topLevel)
	addVersion(topLevel)
}

// loadService wires a Service from the on-disk store and config.
func loadService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return app.New(p, cfg.World()), nil
}
