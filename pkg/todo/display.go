package todo

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

func PrettyPrintList(title string, items ...*Item) {
	if len(items) == 0 {
		return
	}

	b := color.New(color.Bold, color.Underline)
	_, _ = b.Println(title)

	tbl := uitable.New()
	tbl.Separator = " "

	for _, i := range items {
		tbl.AddRow(i.Row())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
