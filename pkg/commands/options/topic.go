// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TopicOptions captures common topic selection flags for commands.
type TopicOptions struct {
	Topic string
	All   bool
}

// AddTopicArgs wires topic-related flags on the provided command.
func AddTopicArgs(cmd *cobra.Command, o *TopicOptions) {
	cmd.Flags().StringVarP(&o.Topic, "topic", "t", "",
		"Specify the topic.")
}

// AddAllTopicsArg registers the flag that operates on all topics.
func AddAllTopicsArg(cmd *cobra.Command, o *TopicOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Specify all topics.")
}
