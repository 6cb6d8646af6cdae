// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ListOptions captures common list selection flags for commands.
type ListOptions struct {
	List   string
	Filter string
	All    bool
}

// AddListArgs wires list-related flags on the provided command.
func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVarP(&o.List, "list", "l", "todos",
		"Specify the todo list.")
}

// AddFilterArgs registers the done/remaining filter flag.
func AddFilterArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "all",
		"Filter items. One of 'all', 'done', 'remaining'.")
}

// AddAllListsArg registers the flag that prints the list catalog.
func AddAllListsArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"List all todo lists.")
}
