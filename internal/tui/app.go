package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/ducklogs/internal/app"
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/joacominatel/ducklogs/internal/config"
	"github.com/joacominatel/ducklogs/internal/i18n"
	"github.com/joacominatel/ducklogs/internal/tui/connect"
	"github.com/joacominatel/ducklogs/internal/tui/logs"
	"github.com/joacominatel/ducklogs/internal/tui/results"
	"github.com/joacominatel/ducklogs/internal/tui/sqlview"
	"github.com/joacominatel/ducklogs/internal/tui/statusbar"
	"github.com/joacominatel/ducklogs/internal/tui/theme"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 60 * time.Second

// View identifies one of the top-level tabs.
type View int

const (
	ViewConnect View = iota
	ViewLogs
	ViewSQL
	viewCount
)

func (v View) String() string {
	switch v {
	case ViewConnect:
		return "connect"
	case ViewLogs:
		return "logs"
	case ViewSQL:
		return "sql"
	default:
		return "unknown"
	}
}

func (v View) title(tr *i18n.Translator) string {
	switch v {
	case ViewConnect:
		return tr.T(i18n.NavConnect)
	case ViewLogs:
		return tr.T(i18n.NavLogs)
	default:
		return tr.T(i18n.NavSQL)
	}
}

// Custom messages for async operations.
type (
	connectedMsg struct {
		result *backend.ConnectResult
		err    error
	}
	quickLoadedMsg struct {
		result *app.QueryResult
		err    error
	}
	queryExecutedMsg struct {
		result *app.QueryResult
		err    error
	}
	languageSavedMsg struct {
		err error
	}
)

// Model is the top-level bubbletea model orchestrating all components.
type Model struct {
	service   *app.Service
	cfg       *config.Config
	tr        *i18n.Translator
	connect   connect.Model
	logs      logs.Model
	sql       sqlview.Model
	statusbar statusbar.Model
	spinner   spinner.Model
	pending   int
	active    View
	width     int
	height    int
	showHelp  bool

	saveLanguage func(code string) error
}

// NewModel creates the top-level model. The forms start from cfg.Defaults.
func NewModel(service *app.Service, cfg *config.Config, tr *i18n.Translator) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorHighlight)

	path := cfg.Path
	m := Model{
		service:   service,
		cfg:       cfg,
		tr:        tr,
		connect:   connect.New(tr, cfg.Defaults.Region, cfg.Defaults.Endpoint),
		logs:      logs.New(tr, cfg.Defaults.URI, cfg.DefaultFormat(), cfg.Defaults.Limit),
		sql:       sqlview.New(tr, cfg.Defaults.SQL),
		statusbar: statusbar.New(tr, service.Address()),
		spinner:   sp,
		saveLanguage: func(code string) error {
			return config.SaveLanguage(path, code)
		},
	}
	m.setActive(ViewConnect)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.statusbar.SetBusy(m.spinner.View())
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.updateKeys(msg)

	case connect.SubmitMsg:
		cmd := m.begin(m.connectCmd(msg.Config))
		return m, cmd

	case logs.SubmitMsg:
		cmd := m.begin(m.quickLoadCmd(msg.Request))
		return m, cmd

	case sqlview.SubmitMsg:
		cmd := m.begin(m.executeQueryCmd(msg.SQL))
		return m, cmd

	case connectedMsg:
		m.finish()
		m.connect.SetResult(msg.result, msg.err)
		m.statusbar.SetConnected(msg.err == nil)
		return m, nil

	case quickLoadedMsg:
		m.finish()
		m.logs.SetResult(msg.result, msg.err)
		return m, nil

	case queryExecutedMsg:
		m.finish()
		m.sql.SetResult(msg.result, msg.err)
		return m, nil

	case languageSavedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("could not save language preference")
			m.statusbar.SetMessage(m.tr.T(i18n.StatusLangSaveFail, msg.err.Error()))
		}
		return m, nil

	case results.StatusNotifyMsg:
		m.statusbar.SetMessage(msg.Message)
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f1":
		m.setActive(ViewConnect)
		return m, nil
	case "f2":
		m.setActive(ViewLogs)
		return m, nil
	case "f3":
		m.setActive(ViewSQL)
		return m, nil
	case "ctrl+right":
		m.setActive((m.active + 1) % viewCount)
		return m, nil
	case "ctrl+left":
		m.setActive((m.active + viewCount - 1) % viewCount)
		return m, nil
	case "ctrl+g":
		cmd := m.toggleLanguage()
		return m, cmd
	case "f10":
		m.showHelp = true
		return m, nil
	case "?":
		if m.resultsFocused() {
			m.showHelp = true
			return m, nil
		}
	}

	// Any key press clears a stale status message.
	m.statusbar.SetMessage("")
	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case ViewConnect:
		m.connect, cmd = m.connect.Update(msg)
	case ViewLogs:
		m.logs, cmd = m.logs.Update(msg)
	case ViewSQL:
		m.sql, cmd = m.sql.Update(msg)
	}

	return m, cmd
}

func (m Model) resultsFocused() bool {
	switch m.active {
	case ViewLogs:
		return m.logs.ResultsFocused()
	case ViewSQL:
		return m.sql.ResultsFocused()
	}
	return false
}

func (m *Model) setActive(v View) {
	m.active = v
	m.connect.SetFocused(v == ViewConnect)
	m.logs.SetFocused(v == ViewLogs)
	m.sql.SetFocused(v == ViewSQL)
	m.statusbar.SetActiveView(v.title(m.tr))
}

func (m *Model) toggleLanguage() tea.Cmd {
	m.tr = m.tr.Toggle()
	m.connect.SetTranslator(m.tr)
	m.logs.SetTranslator(m.tr)
	m.sql.SetTranslator(m.tr)
	m.statusbar.SetTranslator(m.tr)
	m.statusbar.SetActiveView(m.active.title(m.tr))
	m.statusbar.SetMessage("")

	code := i18n.Code(m.tr.Tag())
	save := m.saveLanguage
	logrus.WithField("language", code).Info("language switched")
	return func() tea.Msg {
		return languageSavedMsg{err: save(code)}
	}
}

// begin counts a request as pending and starts the spinner on the first one.
func (m *Model) begin(cmd tea.Cmd) tea.Cmd {
	m.pending++
	if m.pending > 1 {
		return cmd
	}
	m.statusbar.SetBusy(m.spinner.View())
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) finish() {
	if m.pending > 0 {
		m.pending--
	}
	if m.pending == 0 {
		m.statusbar.SetBusy("")
	}
}

// Pending returns the number of requests in flight.
func (m Model) Pending() int {
	return m.pending
}

// Active returns the visible tab.
func (m Model) Active() View {
	return m.active
}

func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// Tabs, the border around the view and the status bar.
	contentWidth := m.width - 4
	contentHeight := m.height - 5

	m.connect.SetSize(contentWidth, contentHeight)
	m.logs.SetSize(contentWidth, contentHeight)
	m.sql.SetSize(contentWidth, contentHeight)
	m.statusbar.SetWidth(m.width)
}

// Async commands

func (m Model) timeout() time.Duration {
	if m.cfg.Timeout > 0 {
		return m.cfg.Timeout
	}
	return defaultTimeout
}

func (m Model) connectCmd(cfg backend.ConnectionConfig) tea.Cmd {
	service := m.service
	timeout := m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := service.Connect(ctx, cfg)
		return connectedMsg{result: res, err: err}
	}
}

func (m Model) quickLoadCmd(req backend.QuickRequest) tea.Cmd {
	service := m.service
	timeout := m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := service.QuickLoad(ctx, req)
		return quickLoadedMsg{result: res, err: err}
	}
}

func (m Model) executeQueryCmd(sql string) tea.Cmd {
	service := m.service
	timeout := m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := service.RunQuery(ctx, sql)
		return queryExecutedMsg{result: res, err: err}
	}
}

// View renders the entire application.
func (m Model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	var body string
	switch m.active {
	case ViewConnect:
		body = m.connect.View()
	case ViewLogs:
		body = m.logs.View()
	case ViewSQL:
		body = m.sql.View()
	}

	frame := theme.StyleActiveBorder
	if m.width > 0 && m.height > 0 {
		frame = frame.Width(m.width - 2).Height(m.height - 4)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		frame.Render(body),
		m.statusbar.View(),
	)
}

func (m Model) viewTabs() string {
	tabs := []string{theme.StyleTitle.Render(m.tr.T(i18n.AppTitle))}
	for v := ViewConnect; v < viewCount; v++ {
		label := v.title(m.tr)
		if v == m.active {
			tabs = append(tabs, theme.StyleActiveTab.Render(label))
		} else {
			tabs = append(tabs, theme.StyleTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHelp() string {
	sectionStyle := lipgloss.NewStyle().
		Foreground(theme.ColorHighlight).
		Bold(true)

	section := func(title i18n.Key, lines ...i18n.Key) []string {
		out := []string{"", sectionStyle.Render(m.tr.T(title))}
		for _, l := range lines {
			for _, item := range strings.Split(m.tr.T(l), " │ ") {
				out = append(out, "  "+item)
			}
		}
		return out
	}

	parts := []string{theme.StyleTitle.Render(m.tr.T(i18n.AppTitle) + " - " + m.tr.T(i18n.HelpTitle))}
	parts = append(parts, section(i18n.HelpGlobal, i18n.HelpNav)...)
	parts = append(parts, section(i18n.HelpForms, i18n.FormHint, i18n.SQLHint)...)
	parts = append(parts, section(i18n.HelpResults, i18n.HelpGrid)...)
	parts = append(parts, "", theme.StyleMuted.Render(m.tr.T(i18n.HelpClose)))

	help := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width == 0 || m.height == 0 {
		return help
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		help,
	)
}
