package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// MaxTextWidth is where item text gets cut with an ellipsis.
const MaxTextWidth = 80

// Box returns the styled status box for an item.
func Box(it model.Item) string {
	t := Current()
	switch {
	case it.Deleted:
		return t.Muted.Render(t.BoxTrashed)
	case it.Done:
		return t.Success.Render(t.BoxChecked)
	default:
		return t.Muted.Render(t.BoxUnchecked)
	}
}

// ItemText returns the styled, truncated text of an item.
func ItemText(it model.Item) string {
	t := Current()
	text := ansi.Truncate(it.Text, MaxTextWidth, "...")
	switch {
	case it.Deleted:
		return t.TrashText.Render(text)
	case it.Done:
		return t.DoneText.Render(text)
	}
	return text
}

// ItemLine renders "<box> <text>".
func ItemLine(it model.Item) string {
	return fmt.Sprintf("%s %s", Box(it), ItemText(it))
}

// Header is the title row with live counts.
func Header(c store.Counts, f model.Filter) string {
	t := Current()
	return fmt.Sprintf("%s %s  %s %d  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Accent.Render("["+f.String()+"]"),
		t.Success.Render(t.SymDone), c.Done,
		t.Pending.Render(t.SymPending), c.Active,
		t.Muted.Render(t.SymTrash), c.Deleted,
		t.Accent.Render("Total"), c.Total,
	)
}

// Progress renders done vs. live (non-deleted) items.
func Progress(c store.Counts, width int) string {
	return Current().Muted.Render(ProgressBar(c.Done, c.Done+c.Active, width))
}

func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}
