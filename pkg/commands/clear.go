package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ksato9700/todomvc/pkg/commands/options"
	"github.com/ksato9700/todomvc/pkg/runner/clear"
	"github.com/ksato9700/todomvc/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "remove every completed item",
		Example: `
todomvc clear --list todos
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := clear.Clear{
				List:        lo.List,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}
