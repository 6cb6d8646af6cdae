package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ksato9700/todomvc/pkg/commands/options"
	"github.com/ksato9700/todomvc/pkg/runner/get"
	"github.com/ksato9700/todomvc/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get [filter]",
		Aliases: []string{"ls", "list"},
		Short:   "get [filter] --list todos",
		Long:    "Get all or a filtered set of todo items.\n\nFilters: all, done, remaining.",
		Example: `
todomvc get
todomvc get done
todomvc get remaining --list chores
todomvc get --all
`,
		ValidArgs: []string{string(get.All), string(get.Done), string(get.Remaining)},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return nil
			}
			lo.Filter = args[0]
			_, err := get.ParseFilter(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			filter, err := get.ParseFilter(lo.Filter)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				List:        lo.List,
				Filter:      filter,
				ListLists:   lo.All,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)
	flagName := "list"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddAllListsArg(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
