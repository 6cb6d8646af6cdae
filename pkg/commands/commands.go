package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ksato9700/todomvc/pkg/commands/options"
	"github.com/ksato9700/todomvc/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "todomvc",
		Short: "Todo lists on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addToggle(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

func listCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	return p.Lists(context.Background(), toComplete)
}
