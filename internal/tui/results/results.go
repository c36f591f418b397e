package results

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/render"
	"github.com/joacominatel/ducklogs/internal/tui/theme"
)

const maxColWidth = 40

// Model is the result grid component shared by the Logs and SQL views.
type Model struct {
	tr        *i18n.Translator
	result    *backend.ResultSet
	grid      render.Grid
	duration  time.Duration
	width     int
	height    int
	focused   bool
	loading   bool
	scrollY   int
	cursorY   int
	cursorX   int
	colOffset int
	colWidths []int
}

// New creates a new results model.
func New(tr *i18n.Translator) Model {
	return Model{tr: tr}
}

// SetTranslator switches the display language.
func (m *Model) SetTranslator(tr *i18n.Translator) {
	m.tr = tr
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.clampScroll()
}

// SetFocused sets the focus state.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Focused returns whether the results pane has focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(l bool) {
	m.loading = l
}

// Loading reports whether a query is running.
func (m Model) Loading() bool {
	return m.loading
}

// SetResult replaces the displayed result set.
func (m *Model) SetResult(rs *backend.ResultSet, d time.Duration) {
	m.result = rs
	m.grid = render.FromResult(rs)
	m.duration = d
	m.loading = false
	m.scrollY = 0
	m.cursorY = 0
	m.cursorX = 0
	m.colOffset = 0
	m.calculateColumnWidths()
}

// Grid returns the rendered grid.
func (m Model) Grid() render.Grid {
	return m.grid
}

func (m *Model) calculateColumnWidths() {
	if len(m.grid.Columns) == 0 {
		m.colWidths = nil
		return
	}

	m.colWidths = make([]int, len(m.grid.Columns))

	// Use display width (not byte length) for accurate measurement
	for i, col := range m.grid.Columns {
		m.colWidths[i] = lipgloss.Width(render.SingleLine(col))
	}

	for _, row := range m.grid.Cells {
		for i, cell := range row {
			w := lipgloss.Width(render.SingleLine(cell))
			if i < len(m.colWidths) && w > m.colWidths[i] {
				m.colWidths[i] = w
			}
		}
	}

	for i := range m.colWidths {
		if m.colWidths[i] < 1 {
			m.colWidths[i] = 1
		}
		if m.colWidths[i] > maxColWidth {
			m.colWidths[i] = maxColWidth
		}
	}
}

func (m Model) visibleRows() int {
	// title, header, separator, footer
	n := m.height - 4
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) clampScroll() {
	rows := m.grid.RowCount()
	if m.cursorY >= rows {
		m.cursorY = rows - 1
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.cursorY < m.scrollY {
		m.scrollY = m.cursorY
	}
	if vis := m.visibleRows(); m.cursorY >= m.scrollY+vis {
		m.scrollY = m.cursorY - vis + 1
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}

	cols := len(m.grid.Columns)
	if m.cursorX >= cols {
		m.cursorX = cols - 1
	}
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorX < m.colOffset {
		m.colOffset = m.cursorX
	}
	for m.colOffset < m.cursorX && !m.columnVisible(m.cursorX) {
		m.colOffset++
	}
}

// columnVisible reports whether column i fits on screen starting at colOffset.
func (m Model) columnVisible(i int) bool {
	used := 2
	for c := m.colOffset; c <= i && c < len(m.colWidths); c++ {
		used += m.colWidths[c]
		if c > m.colOffset {
			used += 3
		}
	}
	return used <= m.width || i == m.colOffset
}

// Init returns the initial command (none).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results pane.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused || m.loading {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.cursorY--
	case "down", "j":
		m.cursorY++
	case "left", "h":
		m.cursorX--
	case "right", "l":
		m.cursorX++
	case "home", "g":
		m.cursorY = 0
	case "end", "G":
		m.cursorY = m.grid.RowCount() - 1
	case "pgup":
		m.cursorY -= m.visibleRows()
	case "pgdown":
		m.cursorY += m.visibleRows()
	case "c":
		return m, m.copyCell()
	case "y":
		return m, m.copyRowJSON()
	case "x":
		return m, m.exportCSVCmd()
	}
	m.clampScroll()
	return m, nil
}

// View renders the results pane.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.ColorPrimary).
		Bold(true)
	if m.focused {
		titleStyle = titleStyle.Underline(true)
	}
	title := titleStyle.Render(m.tr.T(i18n.ResultsTitle))

	if m.loading {
		return title + "\n" + theme.StyleMuted.Render("  "+m.tr.T(i18n.ResultsLoading))
	}

	if m.result == nil {
		return title + "\n" + theme.StyleMuted.Render("  "+m.tr.T(i18n.ResultsIdle))
	}

	if m.grid.Empty() {
		return title + "\n" + theme.StyleMuted.Render("  "+m.tr.T(i18n.NoData))
	}

	stats := m.tr.T(i18n.ResultsStats, m.grid.RowCount(), m.duration.Round(time.Millisecond).String())

	var b strings.Builder
	b.WriteString(title + "  " + theme.StyleMuted.Render(stats))
	b.WriteString("\n")
	b.WriteString(m.renderRow(m.grid.Columns, -1))
	b.WriteString("\n")
	b.WriteString(m.renderSeparator())

	end := m.scrollY + m.visibleRows()
	for i := m.scrollY; i < m.grid.RowCount() && i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(m.grid.Cells[i], i))
	}

	return b.String()
}

// visibleColumns returns the column indexes that fit from colOffset on.
func (m Model) visibleColumns() []int {
	var cols []int
	used := 2
	for i := m.colOffset; i < len(m.colWidths); i++ {
		w := m.colWidths[i]
		if len(cols) > 0 {
			w += 3
		}
		if m.width > 0 && used+w > m.width && len(cols) > 0 {
			break
		}
		used += w
		cols = append(cols, i)
	}
	return cols
}

// renderRow renders one grid line; row -1 is the header.
func (m Model) renderRow(cells []string, row int) string {
	cols := m.visibleColumns()
	parts := make([]string, 0, len(cols))
	for _, i := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		display := fit(render.SingleLine(cell), m.colWidths[i])

		switch {
		case row < 0:
			display = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.ColorPrimary).
				Render(display)
		case m.focused && row == m.cursorY && i == m.cursorX:
			display = lipgloss.NewStyle().
				Reverse(true).
				Render(display)
		case row == m.cursorY:
			display = lipgloss.NewStyle().
				Foreground(theme.ColorHighlight).
				Render(display)
		}
		parts = append(parts, display)
	}
	return "  " + strings.Join(parts, " │ ")
}

func (m Model) renderSeparator() string {
	cols := m.visibleColumns()
	parts := make([]string, len(cols))
	for j, i := range cols {
		parts[j] = strings.Repeat("─", m.colWidths[i])
	}
	return "  " + lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(strings.Join(parts, "─┼─"))
}

// fit truncates or pads s to exactly width display cells.
func fit(s string, width int) string {
	if width < 1 {
		width = 1
	}
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes)) >= width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
