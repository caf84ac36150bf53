// Package ui provides the interactive terminal shell.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"smallt/internal/shell"
	"smallt/internal/store"
	"smallt/internal/task"
)

const headerWidth = 43

// Option configures the shell model.
type Option func(*Model)

// WithTheme sets the render theme.
func WithTheme(th Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

// WithLogger sets the logger for save failures and other oddities.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithConfirmDestructive gates clearall behind a y/N prompt.
func WithConfirmDestructive(enabled bool) Option {
	return func(m *Model) {
		m.confirmDestructive = enabled
	}
}

// Model is the bubbletea model for the command loop. It owns the in-memory
// task list; every accepted mutating command is saved before it is shown.
type Model struct {
	st                 *store.Store
	logger             *log.Logger
	theme              Theme
	confirmDestructive bool

	tasks      task.List
	input      textinput.Model
	status     string
	statusErr  bool
	confirming bool
	showHelp   bool
	quitting   bool
}

// New builds the shell model around an already-loaded task list.
func New(list task.List, st *store.Store, opts ...Option) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "add Buy milk"
	ti.CharLimit = 256
	ti.Focus()

	m := &Model{
		st:                 st,
		logger:             log.New(io.Discard),
		tasks:              list,
		input:              ti,
		confirmDestructive: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the interactive shell and blocks until the user exits.
func Run(list task.List, st *store.Store, opts ...Option) error {
	model := New(list, st, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			return m.handleLine(line)
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 4
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleLine processes one submitted command line. The previous status is
// cleared first; it is only ever shown for a single redraw.
func (m *Model) handleLine(line string) (tea.Model, tea.Cmd) {
	m.status, m.statusErr = "", false

	// A blank line is not a command; just redraw.
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	cmd, err := shell.Parse(line)
	if err != nil {
		m.setError(err.Error())
		return m, nil
	}

	switch cmd.Kind {
	case shell.KindExit:
		m.quitting = true
		return m, tea.Quit
	case shell.KindList:
		return m, nil
	case shell.KindHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case shell.KindClearAll:
		if len(m.tasks) == 0 {
			m.setError("no tasks to clear")
			return m, nil
		}
		if m.confirmDestructive {
			m.confirming = true
			return m, nil
		}
	}

	m.apply(cmd)
	return m, nil
}

// updateConfirm handles the single keypress answering the clearall prompt.
func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false
	switch msg.String() {
	case "y", "Y":
		m.apply(shell.Command{Kind: shell.KindClearAll})
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	default:
		m.status = "Cancelled"
	}
	return m, nil
}

// apply runs a command against the list and persists the result. The
// in-memory list only advances when the save succeeds, so a rejected or
// unsaved command leaves no trace.
func (m *Model) apply(cmd shell.Command) {
	next, status, err := shell.Apply(m.tasks, cmd)
	if err != nil {
		m.setError(err.Error())
		return
	}
	if cmd.Kind.Mutates() {
		if err := m.st.Save(next); err != nil {
			m.logger.Error("save failed", "path", m.st.Path, "err", err)
			m.setError("save failed: " + err.Error())
			return
		}
	}
	m.tasks = next
	m.status = status
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	th := m.theme
	var b strings.Builder

	rule := th.Border.Render(strings.Repeat("═", headerWidth))
	b.WriteString(rule + "\n")
	b.WriteString(th.Header.Render("  smallt task manager") + "\n")
	b.WriteString(rule + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(th.Hint.Render("  No tasks yet. Add one to get started!") + "\n")
	} else {
		for _, line := range TaskLines(th, m.tasks) {
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		style := th.Success
		if m.statusErr {
			style = th.Error
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	if m.showHelp {
		b.WriteString("\n")
		writeHelp(&b, th)
	}

	b.WriteString("\n")
	if m.confirming {
		b.WriteString(th.Warning.Render("This will delete ALL tasks. Continue? (y/N)"))
		return b.String()
	}

	writeFooter(&b, th)
	b.WriteString(th.Prompt.Render("> ") + m.input.View())
	return b.String()
}

// TaskLines renders the numbered checklist, one string per task, 1-based,
// in list order.
func TaskLines(th Theme, list task.List) []string {
	lines := make([]string, len(list))
	for i, t := range list {
		num := th.Number.Render(fmt.Sprintf("%d.", i+1))
		box := "[ ]"
		text := t.Text
		if t.Done {
			box = "[x]"
			text = th.Done.Render(text)
		}
		lines[i] = fmt.Sprintf("%s %s %s", num, box, text)
	}
	return lines
}

var helpEntries = []struct {
	cmd  string
	desc string
}{
	{"add <text>", "Add a new task"},
	{"check <n>", "Mark task n as done"},
	{"delete <n>", "Delete task n"},
	{"clear", "Remove completed tasks"},
	{"clearall", "Remove ALL tasks"},
	{"list", "Refresh the task list"},
	{"help", "Toggle this help"},
	{"exit", "Quit"},
}

func writeHelp(b *strings.Builder, th Theme) {
	b.WriteString(th.Key.Render("Commands:") + "\n")
	for _, e := range helpEntries {
		fmt.Fprintf(b, "  %s %s\n",
			th.Key.Render(fmt.Sprintf("%-14s", e.cmd)),
			th.Legend.Render(e.desc))
	}
}

func writeFooter(b *strings.Builder, th Theme) {
	names := make([]string, len(helpEntries))
	for i, e := range helpEntries {
		names[i] = e.cmd
	}
	b.WriteString(th.Legend.Render(strings.Join(names, " • ")) + "\n")
}
