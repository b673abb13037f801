package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

func useMono(t *testing.T) {
	t.Helper()
	prev := current
	SetTheme("mono")
	t.Cleanup(func() { current = prev })
}

func TestProgressBar(t *testing.T) {
	useMono(t)
	assert.Equal(t, "########## 100%", ProgressBar(3, 3, 10))
	assert.Equal(t, ".....   0%", ProgressBar(0, 0, 2))
	assert.Equal(t, "#####.....  50%", ProgressBar(1, 2, 10))
}

func TestItemLine(t *testing.T) {
	useMono(t)
	tests := []struct {
		name string
		item model.Item
		want string
	}{
		{"pending", model.Item{Text: "milk"}, "[ ] milk"},
		{"done", model.Item{Text: "milk", Done: true}, "[x] milk"},
		{"deleted wins over done", model.Item{Text: "milk", Done: true, Deleted: true}, "[-] milk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemLine(tt.item))
		})
	}
}

func TestItemTextTruncates(t *testing.T) {
	useMono(t)
	got := ItemText(model.Item{Text: strings.Repeat("x", 200)})
	assert.Len(t, got, MaxTextWidth)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestHeader(t *testing.T) {
	useMono(t)
	got := Header(store.Counts{Done: 1, Active: 2, Deleted: 3, Total: 6}, model.FilterActive)
	assert.Equal(t, "Todos [active]  x 1  - 2  d 3  Total 6", got)
}

func TestPanelFramesLines(t *testing.T) {
	useMono(t)
	out := Panel([]string{"one", "two"})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "one")
	assert.Contains(t, lines[2], "two")
}

func TestMessages(t *testing.T) {
	useMono(t)
	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "boom")
	assert.Equal(t, "ok added\nerror: boom\n", buf.String())
}

func TestSetThemeFallsBack(t *testing.T) {
	prev := current
	t.Cleanup(func() { current = prev })

	SetTheme("neon")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("sparkly")
	assert.Equal(t, "classic", Current().Name)
	assert.True(t, ValidTheme("Mono"))
	assert.False(t, ValidTheme("sparkly"))
}
