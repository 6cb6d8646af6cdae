package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksato9700/todomvc/pkg/commands/options"
	"github.com/ksato9700/todomvc/pkg/runner/add"
	"github.com/ksato9700/todomvc/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	content := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a todo item",
		Example: `
todomvc add buy milk
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the todo content")
			}
			content = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				List:        lo.List,
				Content:     content,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)

	flagName := "list"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
