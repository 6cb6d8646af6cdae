package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/ksato9700/todomvc/pkg/list"
	"github.com/ksato9700/todomvc/pkg/printers"
	"github.com/ksato9700/todomvc/pkg/store"
	"github.com/ksato9700/todomvc/pkg/todo"
)

// Filter selects which subsequence of a list to show.
type Filter string

const (
	All       Filter = "all"
	Done      Filter = "done"
	Remaining Filter = "remaining"
)

// ParseFilter converts a string into a Filter, defaulting to All.
func ParseFilter(raw string) (Filter, error) {
	switch Filter(raw) {
	case "", All:
		return All, nil
	case Done, "completed":
		return Done, nil
	case Remaining, "active", "left":
		return Remaining, nil
	}
	return All, fmt.Errorf("unknown filter %q", raw)
}

type Get struct {
	ShowID    bool
	List      string
	Filter    Filter
	ListLists bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.ListLists {
		names := n.Persistence.Lists(ctx, "")
		pp.Title("lists")
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	l := list.NewList(n.List, n.Persistence)
	if err := l.Load(ctx); err != nil {
		return err
	}

	var items []*todo.Item
	switch n.Filter {
	case Done:
		items = l.Done()
	case Remaining:
		items = l.Remaining()
	default:
		items = l.Items()
	}

	pp.TitleWithCount(n.List, len(items))
	pp.List(items...)

	return nil
}
