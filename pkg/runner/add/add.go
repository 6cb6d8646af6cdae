package add

import (
	"context"
	"errors"

	"github.com/ksato9700/todomvc/pkg/list"
	"github.com/ksato9700/todomvc/pkg/store"
	"github.com/ksato9700/todomvc/pkg/todo"
)

type Add struct {
	List    string
	Content string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	l := list.NewList(n.List, n.Persistence)
	if err := l.Load(ctx); err != nil {
		return err
	}
	if _, err := l.Create(n.Content); err != nil {
		return err
	}

	todo.PrettyPrintList(n.List, l.Items()...)

	return nil
}
