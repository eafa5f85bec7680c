// Package grid is a spreadsheet-style terminal editor for the wallet's
// tabular files. It edits plain string cells; callers decide what the rows
// mean when the user saves.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Veraticus/minimal-wallet/internal/cli"
)

const defaultVisibleRows = 15

// Mode is what the editor is doing with keystrokes.
type Mode int

// Editor modes.
const (
	ModeNavigate Mode = iota
	ModeEdit
)

// Option configures a Model.
type Option func(*Model)

// WithValidator runs fn on save; a non-nil error is shown and the editor
// stays open.
func WithValidator(fn func(rows [][]string) error) Option {
	return func(m *Model) {
		m.validate = fn
	}
}

// WithNewRow supplies the cells of a freshly added row.
func WithNewRow(fn func() []string) Option {
	return func(m *Model) {
		m.newRow = fn
	}
}

// Model is the bubbletea model of the grid editor.
type Model struct {
	theme     cli.Theme
	keys      KeyMap
	validate  func([][]string) error
	newRow    func() []string
	title     string
	status    string
	headers   []string
	rows      [][]string
	help      help.Model
	input     textinput.Model
	mode      Mode
	row       int
	col       int
	offset    int
	visible   int
	width     int
	dirty     bool
	confirmed bool // second quit press discards unsaved changes
	saved     bool
	done      bool
}

// New creates an editor over a copy of rows.
func New(title string, headers []string, rows [][]string, theme cli.Theme, opts ...Option) Model {
	input := textinput.New()
	input.Prompt = "» "
	input.CharLimit = 256

	m := Model{
		theme:   theme,
		keys:    DefaultKeyMap(),
		title:   title,
		headers: headers,
		rows:    cloneRows(rows, len(headers)),
		help:    help.New(),
		input:   input,
		visible: defaultVisibleRows,
	}
	m.newRow = func() []string { return make([]string, len(m.headers)) }

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Saved reports whether the user saved before leaving.
func (m Model) Saved() bool {
	return m.saved
}

// Rows returns the edited rows.
func (m Model) Rows() [][]string {
	return cloneRows(m.rows, len(m.headers))
}

// Cursor returns the selected row and column.
func (m Model) Cursor() (int, int) {
	return m.row, m.col
}

// Mode returns the current editor mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Dirty reports whether there are unsaved changes.
func (m Model) Dirty() bool {
	return m.dirty
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		// title, blank, table borders and header, status, help
		if v := msg.Height - 9; v > 0 {
			m.visible = v
		}
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.done = true
			return m, tea.Quit
		}
		if m.mode == ModeEdit {
			return m.updateEdit(msg)
		}
		return m.updateNavigate(msg)
	}

	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		if m.rows[m.row][m.col] != m.input.Value() {
			m.rows[m.row][m.col] = m.input.Value()
			m.dirty = true
		}
		m.leaveEdit()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.leaveEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveEdit() {
	m.mode = ModeNavigate
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	quitting := key.Matches(msg, m.keys.Quit)
	if !quitting {
		m.confirmed = false
	}

	switch {
	case quitting:
		if m.dirty && !m.confirmed {
			m.confirmed = true
			m.status = "Unsaved changes. Press q again to discard them, or ctrl+s to save."
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		if m.validate != nil {
			if err := m.validate(m.Rows()); err != nil {
				m.status = "Cannot save: " + err.Error()
				return m, nil
			}
		}
		m.saved = true
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.headers)-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.Home):
		m.row = 0
		m.scroll()
	case key.Matches(msg, m.keys.End):
		m.row = max(len(m.rows)-1, 0)
		m.scroll()

	case key.Matches(msg, m.keys.Edit):
		if len(m.rows) == 0 {
			m.status = "Nothing to edit. Press a to add a row."
			return m, nil
		}
		m.mode = ModeEdit
		m.input.SetValue(m.rows[m.row][m.col])
		m.input.CursorEnd()
		m.status = ""
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Add):
		at := 0
		if len(m.rows) > 0 {
			at = m.row + 1
		}
		row := fitRow(m.newRow(), len(m.headers))
		m.rows = append(m.rows[:at], append([][]string{row}, m.rows[at:]...)...)
		m.row = at
		m.dirty = true
		m.status = fmt.Sprintf("Added row %d.", at+1)
		m.scroll()

	case key.Matches(msg, m.keys.Delete):
		if len(m.rows) == 0 {
			return m, nil
		}
		m.rows = append(m.rows[:m.row], m.rows[m.row+1:]...)
		m.status = fmt.Sprintf("Deleted row %d.", m.row+1)
		if m.row >= len(m.rows) && m.row > 0 {
			m.row--
		}
		m.dirty = true
		m.scroll()
	}

	return m, nil
}

func (m *Model) moveRow(delta int) {
	next := m.row + delta
	if next < 0 || next >= len(m.rows) {
		return
	}
	m.row = next
	m.scroll()
}

// scroll keeps the cursor row inside the visible window.
func (m *Model) scroll() {
	if m.row < m.offset {
		m.offset = m.row
	}
	if m.row >= m.offset+m.visible {
		m.offset = m.row - m.visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.FormatTitle(cli.WalletIcon, m.title))
	if m.dirty {
		b.WriteString(m.theme.FormatSubtle(" (modified)"))
	}
	b.WriteString("\n")

	end := min(m.offset+m.visible, len(m.rows))
	window := m.rows[m.offset:end]

	selected := lipgloss.NewStyle().
		Background(m.theme.Primary).
		Foreground(lipgloss.Color("#FAFAFA")).
		Bold(true).
		Padding(0, 1)
	current := m.theme.CellStyle().Foreground(m.theme.Accent)

	headers := append([]string{"#"}, m.headers...)
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return m.theme.HeaderStyle()
			case m.offset+row == m.row && col-1 == m.col:
				return selected
			case m.offset+row == m.row:
				return current
			default:
				return m.theme.CellStyle()
			}
		})
	for i, row := range window {
		tbl.Row(append([]string{fmt.Sprintf("%d", m.offset+i+1)}, row...)...)
	}
	b.WriteString(tbl.Render())
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(m.theme.FormatSubtle("(empty)"))
		b.WriteString("\n")
	} else if len(m.rows) > m.visible {
		b.WriteString(m.theme.FormatSubtle(fmt.Sprintf("rows %d-%d of %d", m.offset+1, end, len(m.rows))))
		b.WriteString("\n")
	}

	if m.mode == ModeEdit {
		b.WriteString(fmt.Sprintf("%s: %s\n", m.headers[m.col], m.input.View()))
	} else if m.status != "" {
		b.WriteString(m.theme.FormatInfo(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func cloneRows(rows [][]string, width int) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, fitRow(row, width))
	}
	return out
}

// fitRow copies row, padding or trimming it to width cells.
func fitRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
