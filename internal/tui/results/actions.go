package results

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/render"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func notify(message string) tea.Cmd {
	return func() tea.Msg {
		return StatusNotifyMsg{Message: message}
	}
}

// --- Copy ---

func (m Model) copyCell() tea.Cmd {
	val := m.grid.Cell(m.cursorY, m.cursorX)
	if val == "" {
		return notify(m.tr.T(i18n.ResultsNothing))
	}
	if err := writeClipboard(val); err != nil {
		return notify(m.tr.T(i18n.ResultsCopyFailed, err.Error()))
	}
	return notify(m.tr.T(i18n.ResultsCopied, truncateStatus(render.SingleLine(val), 40)))
}

func (m Model) copyRowJSON() tea.Cmd {
	if m.result == nil || m.cursorY < 0 || m.cursorY >= len(m.result.Rows) {
		return notify(m.tr.T(i18n.ResultsNothing))
	}
	jsonStr := render.RowJSON(m.result.Columns, m.result.Rows[m.cursorY])
	if err := writeClipboard(jsonStr); err != nil {
		return notify(m.tr.T(i18n.ResultsCopyFailed, err.Error()))
	}
	return notify(m.tr.T(i18n.ResultsRowCopied))
}

// --- Export ---

func (m Model) exportCSVCmd() tea.Cmd {
	if m.grid.Empty() {
		return notify(m.tr.T(i18n.ResultsNothing))
	}
	grid := m.grid
	tr := m.tr
	return func() tea.Msg {
		filename := fmt.Sprintf("ducklogs_export_%s.csv", time.Now().Format("20060102_150405"))

		f, err := os.Create(filename)
		if err != nil {
			return StatusNotifyMsg{Message: tr.T(i18n.ResultsExportFail, err.Error())}
		}
		defer f.Close()

		if err := render.WriteCSV(f, grid); err != nil {
			return StatusNotifyMsg{Message: tr.T(i18n.ResultsExportFail, err.Error())}
		}
		return StatusNotifyMsg{Message: tr.T(i18n.ResultsExported, grid.RowCount(), filename)}
	}
}

func truncateStatus(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
