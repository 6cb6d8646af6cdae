package commands

import (
	"github.com/spf13/cobra"

	"github.com/ksato9700/todomvc/pkg/runner/watch"
	"github.com/ksato9700/todomvc/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "stream storage change events",
		Example: `
todomvc watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := watch.Watch{
				Out:         cmd.OutOrStdout(),
				Persistence: p,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
