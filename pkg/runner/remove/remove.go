// Package remove provides the runner logic for deleting items.
package remove

import (
	"context"
	"errors"

	"github.com/ksato9700/todomvc/pkg/list"
	"github.com/ksato9700/todomvc/pkg/printers"
	"github.com/ksato9700/todomvc/pkg/store"
)

// Remove deletes one item from its list and from storage.
type Remove struct {
	ID   string
	List string

	Persistence store.Persistence
}

// Do executes the removal for the configured item ID.
func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	l := list.NewList(n.List, n.Persistence)
	if err := l.Load(ctx); err != nil {
		return err
	}
	if err := l.Remove(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount(n.List, l.Len())
	pp.List(l.Items()...)

	return nil
}
