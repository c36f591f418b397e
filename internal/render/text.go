package render

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
	"unicode"

	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/mattn/go-runewidth"
)

// WriteText writes g as an aligned plain-text table. An empty grid writes
// only the noData line.
func WriteText(w io.Writer, g Grid, noData string) error {
	bw := bufio.NewWriter(w)
	if g.Empty() {
		bw.WriteString(noData)
		bw.WriteString("\n")
		return bw.Flush()
	}

	widths := make([]int, len(g.Columns))
	for i, col := range g.Columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range g.Cells {
		for i, cell := range row {
			if cw := runewidth.StringWidth(SingleLine(cell)); i < len(widths) && cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeLine := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				bw.WriteString(" | ")
			}
			text := SingleLine(cell)
			if i == len(cells)-1 {
				bw.WriteString(text)
				continue
			}
			bw.WriteString(runewidth.FillRight(text, widths[i]))
		}
		bw.WriteString("\n")
	}

	writeLine(g.Columns)
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	bw.WriteString(strings.Join(seps, "-+-"))
	bw.WriteString("\n")
	for _, row := range g.Cells {
		writeLine(row)
	}
	return bw.Flush()
}

// WriteCSV writes the header and every row of g as CSV.
func WriteCSV(w io.Writer, g Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(g.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(g.Cells); err != nil {
		return err
	}
	return cw.Error()
}

// RowJSON renders one row as a JSON object whose keys follow the column order.
// Map marshaling would sort the keys instead.
func RowJSON(columns []string, row backend.Row) string {
	var b strings.Builder
	b.WriteString("{")
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		key, _ := backend.JSON.Marshal(col)
		b.Write(key)
		b.WriteString(": ")
		val, err := backend.JSON.Marshal(row[col])
		if err != nil {
			b.WriteString("null")
			continue
		}
		b.Write(val)
	}
	b.WriteString("}")
	return b.String()
}

var lineFlattener = strings.NewReplacer("\r\n", "↵", "\n", "↵", "\r", "↵", "\t", " ")

// SingleLine keeps multi-line values on one table row and makes the
// remaining control characters visible, so cell text can never drive the
// terminal. C0 codes and DEL become their control-picture glyphs (ESC shows
// as ␛), any other control rune becomes U+FFFD.
func SingleLine(s string) string {
	return strings.Map(controlPicture, lineFlattener.Replace(s))
}

func controlPicture(r rune) rune {
	switch {
	case r < 0x20:
		return 0x2400 + r
	case r == 0x7f:
		return '␡'
	case unicode.IsControl(r):
		return unicode.ReplacementChar
	}
	return r
}
