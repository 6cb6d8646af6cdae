package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksato9700/todomvc/pkg/commands/options"
	"github.com/ksato9700/todomvc/pkg/runner/edit"
	"github.com/ksato9700/todomvc/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}
	content := ""

	cmd := &cobra.Command{
		Use:   "edit <item id> <content>",
		Short: "rewrite an item's content",
		Example: `
todomvc edit <item id> walk the dog
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an item id and new content")
			}
			io.ID = args[0]
			content = strings.Join(args[1:], " ")

			return nil
		},

		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          io.ID,
				List:        lo.List,
				Content:     content,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}
