// Package toggle provides the runner logic for flipping an item's done flag.
package toggle

import (
	"context"
	"errors"

	"github.com/ksato9700/todomvc/pkg/list"
	"github.com/ksato9700/todomvc/pkg/printers"
	"github.com/ksato9700/todomvc/pkg/store"
)

// Toggle flips the completion state of one item.
type Toggle struct {
	ID   string
	List string

	Persistence store.Persistence
}

// Do executes the toggle for the configured item ID.
func (n *Toggle) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}

	l := list.NewList(n.List, n.Persistence)
	if err := l.Load(ctx); err != nil {
		return err
	}
	if err := l.Toggle(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(n.List)
	pp.List(l.Items()...)

	return nil
}
