package tui

import (
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// Which controls are usable. These are screen rules; the store itself
// accepts every action at any time.

// DraftShown reports whether the add form is on screen. The deleted view
// shows the empty-trash control in its place.
func DraftShown(f model.Filter) bool { return f != model.FilterDeleted }

// DraftEnabled reports whether new items can be typed and submitted.
func DraftEnabled(f model.Filter) bool {
	return DraftShown(f) && f != model.FilterCompleted
}

// EmptyTrashShown reports whether the empty-trash control is on screen.
func EmptyTrashShown(f model.Filter) bool { return f == model.FilterDeleted }

// EmptyTrashEnabled reports whether there is anything to purge.
func EmptyTrashEnabled(s model.State) bool {
	return EmptyTrashShown(s.Filter) && store.HasTrash(s)
}

// CheckEnabled reports whether the done box of it can be toggled.
func CheckEnabled(it model.Item) bool { return !it.Deleted }

// EditEnabled reports whether the text of it can be changed.
func EditEnabled(it model.Item) bool { return !it.Done && !it.Deleted }

// DeleteLabel names what the delete control does for it.
func DeleteLabel(it model.Item) string {
	if it.Deleted {
		return "restore"
	}
	return "delete"
}
