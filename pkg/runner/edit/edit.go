// Package edit provides the runner logic for rewriting an item's text.
package edit

import (
	"context"
	"errors"

	"github.com/ksato9700/todomvc/pkg/list"
	"github.com/ksato9700/todomvc/pkg/printers"
	"github.com/ksato9700/todomvc/pkg/store"
)

// Edit replaces the content of one item.
type Edit struct {
	ID      string
	List    string
	Content string

	Persistence store.Persistence
}

// Do executes the edit for the configured item ID.
func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	l := list.NewList(n.List, n.Persistence)
	if err := l.Load(ctx); err != nil {
		return err
	}
	if err := l.SetContent(n.ID, n.Content); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(n.List)
	pp.List(l.Items()...)

	return nil
}
