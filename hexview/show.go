package hexview

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Show pretty prints the view as a table with one column per group of
// elements. Useful for debugging. A nil writer prints to stdout.
func (v View[T]) Show(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetOutputMirror(w)

	header := table.Row{"offset"}
	for g := 0; g < RowSize; g += GroupSize {
		header = append(header, groupLabel(g, g+GroupSize-1))
	}
	t.AppendHeader(header)

	for i := 0; i < len(v.Buffer); i += RowSize {
		chunk := v.Buffer[i:min(i+RowSize, len(v.Buffer))]
		row := table.Row{v.offset(i)}
		for g := 0; g < len(chunk); g += GroupSize {
			group := chunk[g:min(g+GroupSize, len(chunk))]
			els := make([]string, len(group))
			for j, el := range group {
				els[j] = v.element(el)
			}
			row = append(row, strings.Join(els, " "))
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		t.AppendRow(row)
	}
	t.Render()
}

func groupLabel(from, to int) string {
	return strconv.Itoa(from) + "-" + strconv.Itoa(to)
}
