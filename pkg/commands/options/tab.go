package options

import (
	"github.com/spf13/cobra"
)

// TabOptions captures how an entry is opened into the tab list.
type TabOptions struct {
	InPlace    bool
	Background bool
	NoHistory  bool
}

func AddTabArgs(cmd *cobra.Command, o *TabOptions) {
	cmd.Flags().BoolVar(&o.InPlace, "in-place", false,
		"Reuse the active tab instead of opening a new one.")
	cmd.Flags().BoolVar(&o.Background, "background", false,
		"Do not activate the tab.")
	cmd.Flags().BoolVar(&o.NoHistory, "no-history", false,
		"Do not record the visit in the tab's history.")
}
