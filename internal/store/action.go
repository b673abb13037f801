package store

import "github.com/Makepad-fr/tada/internal/model"

// Action is a closed set of list transitions. Only the types in this file
// implement it.
type Action interface {
	Name() string
	isAction()
}

// SetDraft replaces the pending input buffer.
type SetDraft struct{ Text string }

// Submit turns a non-empty draft into a new item at the head of the list.
type Submit struct{}

// SetFilter switches the active view.
type SetFilter struct{ Filter model.Filter }

// EditText replaces the text of the item with the given ID.
type EditText struct {
	ID   string
	Text string
}

// ToggleDone flips the completion flag of an item.
type ToggleDone struct{ ID string }

// ToggleDeleted moves an item to the trash or restores it.
type ToggleDeleted struct{ ID string }

// EmptyTrash drops every deleted item for good.
type EmptyTrash struct{}

func (SetDraft) Name() string      { return "set_draft" }
func (Submit) Name() string        { return "submit" }
func (SetFilter) Name() string     { return "set_filter" }
func (EditText) Name() string      { return "edit_text" }
func (ToggleDone) Name() string    { return "toggle_done" }
func (ToggleDeleted) Name() string { return "toggle_deleted" }
func (EmptyTrash) Name() string    { return "empty_trash" }

func (SetDraft) isAction()      {}
func (Submit) isAction()        {}
func (SetFilter) isAction()     {}
func (EditText) isAction()      {}
func (ToggleDone) isAction()    {}
func (ToggleDeleted) isAction() {}
func (EmptyTrash) isAction()    {}
