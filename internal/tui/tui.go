// Package tui is the interactive Bubble Tea front end over the list store.
//
// Every gesture becomes a store action; the model keeps the resulting state
// and rebuilds the visible list from it after each transition.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

type mode int

const (
	browsing mode = iota
	drafting
	editing
)

// Options tune a session.
type Options struct {
	CharLimit int
	Logger    *log.Logger
}

// Model implements tea.Model.
type Model struct {
	reducer *store.Reducer
	state   model.State
	logger  *log.Logger
	keys    keyMap

	list list.Model
	ti   textinput.Model // shared by add and edit

	mode   mode
	editID string
	status string

	width, height int
}

// New builds a session model starting from s.
func New(r *store.Reducer, s model.State, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.CharLimit <= 0 {
		opts.CharLimit = 200
	}
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = opts.CharLimit

	m := Model{
		reducer: r,
		state:   s,
		logger:  opts.Logger,
		keys:    keys,
		list:    l,
		ti:      ti,
		width:   80,
		height:  24,
	}
	m.resize()
	m.refresh()
	return m
}

// State returns the current list state.
func (m Model) State() model.State { return m.state }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case drafting:
			return m.updateDraft(msg)
		case editing:
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}
	var cmd tea.Cmd
	if m.mode != browsing {
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateDraft(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.state.Draft == "" {
			m.status = "nothing to add"
			return m, nil
		}
		m.dispatch(store.Submit{})
		m.ti.SetValue(m.state.Draft)
		m.status = "added"
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	if v := m.ti.Value(); v != m.state.Draft {
		m.dispatch(store.SetDraft{Text: v})
	}
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Cancel) {
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	if it, ok := store.Find(m.state, m.editID); ok && it.Text != m.ti.Value() {
		m.dispatch(store.EditText{ID: m.editID, Text: m.ti.Value()})
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		if !DraftEnabled(m.state.Filter) {
			m.status = "adding is off in the " + m.state.Filter.String() + " view"
			return m, nil
		}
		m.mode = drafting
		m.ti.Placeholder = "New item..."
		m.ti.SetValue(m.state.Draft)
		m.ti.CursorEnd()
		return m, m.ti.Focus()

	case key.Matches(msg, m.keys.Edit):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !EditEnabled(it) {
			m.status = "done or deleted items cannot be edited"
			return m, nil
		}
		m.mode = editing
		m.editID = it.ID
		m.ti.Placeholder = "Edit item..."
		m.ti.SetValue(it.Text)
		m.ti.CursorEnd()
		return m, m.ti.Focus()

	case key.Matches(msg, m.keys.ToggleDone):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !CheckEnabled(it) {
			m.status = "restore the item before checking it"
			return m, nil
		}
		m.dispatch(store.ToggleDone{ID: it.ID})
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.dispatch(store.ToggleDeleted{ID: it.ID})
		}
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		m.dispatch(store.SetFilter{Filter: m.state.Filter.Next()})
		return m, nil

	case key.Matches(msg, m.keys.PrevFilter):
		m.dispatch(store.SetFilter{Filter: m.state.Filter.Prev()})
		return m, nil

	case key.Matches(msg, m.keys.PickFilter):
		n := int(msg.String()[0] - '1')
		m.dispatch(store.SetFilter{Filter: model.Filters[n]})
		return m, nil

	case key.Matches(msg, m.keys.EmptyTrash):
		switch {
		case !EmptyTrashShown(m.state.Filter):
			m.status = "empty trash lives in the deleted view (press 4)"
		case !EmptyTrashEnabled(m.state):
			m.status = "trash is already empty"
		default:
			n := store.Count(m.state).Deleted
			m.dispatch(store.EmptyTrash{})
			m.logger.Info("trash emptied", "removed", n)
			m.status = "trash emptied"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// dispatch applies a to the state and rebuilds the view.
func (m *Model) dispatch(a store.Action) {
	next, err := m.reducer.Apply(m.state, a)
	if err != nil {
		m.logger.Error("apply failed", "action", a.Name(), "err", err)
		m.status = err.Error()
		return
	}
	m.state = next
	m.logger.Debug("applied", "action", a.Name(), "items", len(next.Items), "filter", next.Filter)
	m.refresh()
}

func (m *Model) closeInput() {
	m.mode = browsing
	m.editID = ""
	m.ti.Blur()
	m.ti.SetValue("")
}

func (m *Model) refresh() {
	items := toListItems(store.Visible(m.state))
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.Item, true
}

// chrome around the list: border, header, progress, input box, status
const chromeHeight = 10

func (m *Model) resize() {
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	t := ui.Current()
	c := store.Count(m.state)

	var b strings.Builder
	b.WriteString(ui.Header(c, m.state.Filter))
	b.WriteString("\n")
	b.WriteString(ui.Progress(c, 28))
	b.WriteString("\n\n")
	if len(m.list.Items()) == 0 {
		b.WriteString(t.Muted.Render("no items"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	switch {
	case m.mode == editing:
		b.WriteString(bar.Render("Edit item\n" + m.ti.View()))
	case m.mode == drafting:
		b.WriteString(bar.Render("Add new item\n" + m.ti.View()))
	case EmptyTrashShown(m.state.Filter):
		label := "t  empty trash"
		if EmptyTrashEnabled(m.state) {
			b.WriteString(bar.Render(t.Error.Render(label)))
		} else {
			b.WriteString(bar.Render(t.Muted.Render(label + " (nothing to remove)")))
		}
	case DraftEnabled(m.state.Filter):
		hint := "a  add item"
		if m.state.Draft != "" {
			hint += "  " + t.Muted.Render("draft: "+m.state.Draft)
		}
		b.WriteString(bar.Render(hint))
	default:
		b.WriteString(bar.Render(t.Muted.Render("adding is off in the " + m.state.Filter.String() + " view")))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(t.Accent.Render(m.status))
	}
	return ui.Panel([]string{b.String()})
}

// Run starts the program and returns the model it ended with.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	p := tea.NewProgram(m, opts...)
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	fm, ok := final.(Model)
	if !ok {
		return m, nil
	}
	return fm, nil
}
