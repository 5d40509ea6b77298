package ui

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/config"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/registry"
	"selectbox/internal/widget/actions"
)

// FieldDef describes one dropdown field of the demo form
type FieldDef struct {
	Label    string
	Groups   []domain.OptionGroup
	Disabled bool
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	reg    *registry.Registry

	fields []*Field
	cursor int // focused field index

	width  int
	height int
	status string

	keys     KeyMap
	help     help.Model
	renderer *viewRenderer

	// deferred carries scheduled callbacks from widget opens back onto
	// the program loop
	deferred chan func()

	// Program reference for terminal management around the help pager
	program     *tea.Program
	inPagerMode bool

	// e2eReady makes the view emit a marker line the test driver waits for
	e2eReady bool
}

// NewModel creates a new UI model with one dropdown field per definition
func NewModel(bus eventbus.EventBus, cfg *config.Config, reg *registry.Registry, defs []FieldDef) *Model {
	m := &Model{
		bus:      bus,
		config:   cfg,
		reg:      reg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: newViewRenderer(),
		deferred: make(chan func(), 16),
		e2eReady: os.Getenv("SELECTBOX_E2E_TEST") == "1",
	}

	sched := actions.FuncScheduler(func(fn func()) {
		select {
		case m.deferred <- fn:
		default:
			log.Println("Deferred queue full, dropping scheduled callback")
		}
	})

	for _, def := range defs {
		f := NewField(def.Label, def.Groups, cfg, reg, bus, sched)
		f.state.Disabled = def.Disabled
		m.fields = append(m.fields, f)
	}

	if len(m.fields) > 0 {
		m.fields[0].acts.Focus()
	}

	return m
}

// SetProgram stores the program reference for pager terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return m.waitDeferred()
}

// waitDeferred blocks on the deferred queue and hands the callback to a
// later Update turn
func (m *Model) waitDeferred() tea.Cmd {
	return func() tea.Msg {
		return deferredMsg{fn: <-m.deferred}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case deferredMsg:
		msg.fn()
		return m, m.waitDeferred()

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.status = fmt.Sprintf("help pager failed: %v", msg.err)
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("copied %q", msg.value)
		}
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleEvent updates the status line from widget lifecycle events
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.OpenedEvent:
		m.status = fmt.Sprintf("opened %s", e.Direction)
	case eventbus.SelectionChangedEvent:
		m.status = fmt.Sprintf("selected %q", e.Value)
	case eventbus.NativeModeEvent:
		m.status = "delegated to native control"
	case eventbus.ErrorEvent:
		m.status = e.Message
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	open := m.openField()

	// While searching, printable keys feed the filter input
	if open != nil && open.state.Searching {
		switch {
		case key.Matches(msg, m.keys.Open):
			open.SelectHighlighted()
			return m, nil
		case key.Matches(msg, m.keys.Close):
			open.Dismiss()
			return m, nil
		case msg.String() == "up":
			open.MoveHighlight(-1)
			return m, nil
		case msg.String() == "down":
			open.MoveHighlight(1)
			return m, nil
		}
		var cmd tea.Cmd
		open.filter, cmd = open.filter.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if open != nil {
			open.MoveHighlight(-1)
		} else {
			m.moveCursor(-1)
		}

	case key.Matches(msg, m.keys.Down):
		if open != nil {
			open.MoveHighlight(1)
		} else {
			m.moveCursor(1)
		}

	case key.Matches(msg, m.keys.Open):
		if open != nil {
			open.SelectHighlighted()
			break
		}
		f := m.currentField()
		if f == nil {
			break
		}
		if f.state.UseNativeMode {
			m.status = "field is delegated to the native control"
			break
		}
		f.SetRow(m.fieldRow(m.cursor))
		f.Open(m.height)
		if f.state.IsClosed() && f.state.Disabled {
			m.status = "field is disabled"
		}

	case key.Matches(msg, m.keys.Close):
		if open != nil {
			open.Dismiss()
		}

	case key.Matches(msg, m.keys.Search):
		if open != nil {
			open.StartSearch()
		}

	case key.Matches(msg, m.keys.Native):
		if f := m.currentField(); f != nil && open == nil {
			f.acts.UseNative()
		}

	case key.Matches(msg, m.keys.Copy):
		if f := m.currentField(); f != nil {
			return m, copyValueCmd(f)
		}

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpCmd()
	}

	return m, nil
}

// moveCursor moves focus between fields, keeping the focus flag in sync
// through the action layer
func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.fields) {
		return
	}
	m.fields[m.cursor].acts.Blur()
	m.cursor = next
	m.fields[m.cursor].acts.Focus()
}

// currentField returns the field under the cursor
func (m *Model) currentField() *Field {
	if m.cursor < 0 || m.cursor >= len(m.fields) {
		return nil
	}
	return m.fields[m.cursor]
}

// openField returns the field whose body is open, if any
func (m *Model) openField() *Field {
	for _, f := range m.fields {
		if f.state.IsOpen() {
			return f
		}
	}
	return nil
}

// fieldRow returns the trigger row of the given field in the rendered form
func (m *Model) fieldRow(index int) int {
	// Title plus margin, then one row per closed field above
	return 2 + index
}

// copyValueCmd copies the field's selected value to the system clipboard
func copyValueCmd(f *Field) tea.Cmd {
	return func() tea.Msg {
		opt, ok := f.state.SelectedOption()
		if !ok {
			return clipboardMsg{err: fmt.Errorf("no option selected")}
		}
		if err := clipboard.WriteAll(opt.Value); err != nil {
			return clipboardMsg{value: opt.Value, err: err}
		}
		return clipboardMsg{value: opt.Value}
	}
}

// showHelpCmd opens the help content in the ov pager
func (m *Model) showHelpCmd() tea.Cmd {
	if m.program == nil || m.inPagerMode {
		return nil
	}
	m.inPagerMode = true
	helpOps := NewHelpOps(m.program)
	content := NewHelpRenderer().RenderHelpContent()
	return func() tea.Msg {
		err := helpOps.ShowHelpInPager(content)
		return helpPagerMsg{err: err}
	}
}

// View renders the form
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderer.styles.Title.Render("selectbox"))
	b.WriteString("\n")
	if m.e2eReady {
		b.WriteString("__READY__\n")
	}

	for i, f := range m.fields {
		b.WriteString(m.renderer.RenderFieldState(f, i == m.cursor))
		b.WriteString("\n")
	}

	if m.config.UISettings.ShowStatusBar && m.status != "" {
		b.WriteString(m.renderer.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.renderer.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}
