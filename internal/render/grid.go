package render

import (
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/samber/lo"
)

// Grid is a result set reduced to display text. Cells[i][j] is the text of
// row i under Columns[j].
type Grid struct {
	Columns []string
	Cells   [][]string
}

// Build formats every row against the column list. Row count and column
// order are preserved exactly; keys missing from a row render empty.
func Build(columns []string, rows []backend.Row) Grid {
	cols := append([]string(nil), columns...)
	cells := lo.Map(rows, func(row backend.Row, _ int) []string {
		return lo.Map(cols, func(col string, _ int) string {
			return FormatCell(row[col])
		})
	})
	return Grid{Columns: cols, Cells: cells}
}

// FromResult builds a grid from a result set; nil yields an empty grid.
func FromResult(rs *backend.ResultSet) Grid {
	if rs == nil {
		return Grid{}
	}
	return Build(rs.Columns, rs.Rows)
}

// Empty reports whether the grid has no rows to show.
func (g Grid) Empty() bool {
	return len(g.Cells) == 0
}

// RowCount returns the number of rows.
func (g Grid) RowCount() int {
	return len(g.Cells)
}

// Cell returns the text at (row, col) or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Cells) {
		return ""
	}
	r := g.Cells[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
