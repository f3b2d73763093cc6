package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of the entry or tab.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id of an entry.")
}

// EntryOptions captures creation flags for new entries.
type EntryOptions struct {
	Parent string
	Type   string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Parent, "parent", "p", "",
		"Create the entry under this parent instead of the top level.")
	cmd.Flags().StringVar(&o.Type, "type", "entry",
		"The entry's subtype within its topic.")
}
