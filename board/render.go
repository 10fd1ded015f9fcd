package board

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jacentio/beyond/internal/coord"
)

// String renders the stored cells in coordinate order, e.g. "{(0, 0): X, (1, 1): O}".
func (b *Board[V]) String() string {
	items := b.store.Items()
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s: %v", coord.Format(item.Coords), item.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Grid renders a 2-D board as a table with the first dimension's labels
// down the side and the second's across the top. Unset cells show as ".".
// Boards of any other rank render as String.
func (b *Board[V]) Grid() string {
	shape := b.store.Shape()
	if shape.NDim() != 2 {
		return b.String()
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', 0)

	header := append([]string{""}, shape[1].Labels()...)
	fmt.Fprintln(w, strings.Join(header, "\t"))

	rowLabels := shape[0].Labels()
	for r, label := range rowLabels {
		row := make([]string, 0, shape[1].Size()+1)
		row = append(row, label)
		for c := 0; c < shape[1].Size(); c++ {
			item, ok := b.store.cells[coord.Encode([]int{r, c})]
			if !ok {
				row = append(row, ".")
				continue
			}
			row = append(row, fmt.Sprint(item.Value))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	return sb.String()
}
