package tui

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

func newTestModel(t *testing.T, f model.Filter) Model {
	t.Helper()
	n := 0
	r := store.NewWithIDs(func() string {
		n++
		return "id" + strconv.Itoa(n)
	})
	m := New(r, model.NewState(f), Options{})
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func keys(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	space    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	down     = tea.KeyMsg{Type: tea.KeyDown}
)

func add(t *testing.T, m Model, texts ...string) Model {
	t.Helper()
	m = send(t, m, keys("a"))
	for _, text := range texts {
		m = send(t, m, keys(text), enter)
	}
	return send(t, m, esc)
}

func TestAddDispatchesDraftAndSubmit(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	m = send(t, m, keys("a"), keys("buy milk"))
	assert.Equal(t, "buy milk", m.State().Draft, "typing updates the draft")

	m = send(t, m, enter)
	require.Len(t, m.State().Items, 1)
	assert.Equal(t, "buy milk", m.State().Items[0].Text)
	assert.Empty(t, m.State().Draft)

	m = send(t, m, keys("bread"), enter, esc)
	require.Len(t, m.State().Items, 2)
	assert.Equal(t, "bread", m.State().Items[0].Text, "newest first")
	assert.Equal(t, browsing, m.mode)
}

func TestEscKeepsDraft(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	m = send(t, m, keys("a"), keys("half"), esc)
	assert.Equal(t, "half", m.State().Draft)
	assert.Empty(t, m.State().Items)

	m = send(t, m, keys("a"))
	assert.Equal(t, "half", m.ti.Value(), "input reopens with the draft")
}

func TestEmptySubmitDoesNothing(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	m = send(t, m, keys("a"), enter)
	assert.Empty(t, m.State().Items)
	assert.Equal(t, "nothing to add", m.Status())
}

func TestAddDisabledInCompletedAndDeletedViews(t *testing.T) {
	for _, f := range []model.Filter{model.FilterCompleted, model.FilterDeleted} {
		m := newTestModel(t, f)
		m = send(t, m, keys("a"))
		assert.Equal(t, browsing, m.mode, f.String())
		assert.Contains(t, m.Status(), "adding is off", f.String())

		m = send(t, m, keys("x"))
		assert.Empty(t, m.State().Draft, f.String())
	}
}

func TestToggleDoneAndFilters(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	m = add(t, m, "buy milk")
	m = send(t, m, space)
	assert.True(t, m.State().Items[0].Done)

	m = send(t, m, keys("3"))
	assert.Equal(t, model.FilterActive, m.State().Filter)
	assert.Empty(t, m.list.Items())

	m = send(t, m, shiftTab)
	assert.Equal(t, model.FilterCompleted, m.State().Filter)
	assert.Len(t, m.list.Items(), 1)

	m = send(t, m, tab, tab)
	assert.Equal(t, model.FilterDeleted, m.State().Filter)
}

func TestEditLiveUpdatesText(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	m = add(t, m, "milk")
	m = send(t, m, keys("e"), keys(" and eggs"))
	assert.Equal(t, "milk and eggs", m.State().Items[0].Text)

	m = send(t, m, enter)
	assert.Equal(t, browsing, m.mode)
	assert.Empty(t, m.State().Draft, "editing never touches the draft")
}

func TestEditDisabledForDoneItems(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	m = add(t, m, "milk")
	m = send(t, m, space, keys("e"))
	assert.Equal(t, browsing, m.mode)
	assert.Contains(t, m.Status(), "cannot be edited")

	m = send(t, m, keys("x"))
	assert.Equal(t, "milk", m.State().Items[0].Text)
}

func TestDeleteRestoreAndEmptyTrash(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	m = add(t, m, "a", "b", "c")
	m = send(t, m, down, keys("d"))
	require.Len(t, m.list.Items(), 2)
	assert.True(t, m.State().Items[1].Deleted, "b was selected")

	m = send(t, m, keys("t"))
	assert.Contains(t, m.Status(), "deleted view")
	assert.Len(t, m.State().Items, 3)

	m = send(t, m, keys("4"))
	require.Len(t, m.list.Items(), 1)

	m = send(t, m, space)
	assert.False(t, m.State().Items[1].Done, "deleted items cannot be checked")
	assert.Contains(t, m.Status(), "restore")

	m = send(t, m, keys("d"))
	assert.False(t, m.State().Items[1].Deleted, "restored")
	m = send(t, m, keys("t"))
	assert.Equal(t, "trash is already empty", m.Status())

	m = send(t, m, keys("1"), keys("d"), keys("4"), keys("t"))
	assert.Equal(t, "trash emptied", m.Status())
	assert.Len(t, m.State().Items, 2)
	assert.False(t, store.HasTrash(m.State()))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = send(t, m, keys("a"), keys("q"))
	assert.Equal(t, "q", m.State().Draft, "q types while drafting")
}

func TestViewShowsControls(t *testing.T) {
	m := newTestModel(t, model.FilterAll)
	assert.Contains(t, m.View(), "no items")
	assert.Contains(t, m.View(), "add item")

	m = add(t, m, "milk")
	assert.Contains(t, m.View(), "milk")

	m = send(t, m, keys("4"))
	assert.Contains(t, m.View(), "nothing to remove")
}
