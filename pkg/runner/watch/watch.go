// Package watch provides the runner logic for streaming store changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ksato9700/todomvc/pkg/store"
)

// Watch prints a line per storage change event until ctx is cancelled.
type Watch struct {
	Out io.Writer

	Persistence store.Persistence
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	for ev := range events {
		switch ev.Type {
		case store.EventListChanged:
			_, _ = fmt.Fprintf(out, "changed %s\n", ev.List)
		case store.EventListsInvalidated:
			_, _ = fmt.Fprintln(out, "lists invalidated")
		}
	}
	return nil
}
