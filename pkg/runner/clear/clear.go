// Package clear provides the runner logic for dropping completed items.
package clear

import (
	"context"
	"errors"

	"github.com/ksato9700/todomvc/pkg/list"
	"github.com/ksato9700/todomvc/pkg/printers"
	"github.com/ksato9700/todomvc/pkg/store"
)

// Clear removes every completed item from the list.
type Clear struct {
	List string

	Persistence store.Persistence
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not clear, no persistence")
	}

	l := list.NewList(n.List, n.Persistence)
	if err := l.Load(ctx); err != nil {
		return err
	}

	for _, i := range l.Done() {
		if err := l.Remove(i.ID); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(n.List, l.Len())
	pp.List(l.Items()...)

	return nil
}
