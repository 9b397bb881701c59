package bubble_adapter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/goviewer/core"
)

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{
			"plain rune",
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
			core.KeyEvent{Rune: 'j'},
		},
		{
			"escape",
			tea.KeyMsg{Type: tea.KeyEsc},
			core.KeyEvent{Key: core.KeyEscape},
		},
		{
			"arrow down",
			tea.KeyMsg{Type: tea.KeyDown},
			core.KeyEvent{Key: core.KeyDown},
		},
		{
			"ctrl+d half page",
			tea.KeyMsg{Type: tea.KeyCtrlD},
			core.KeyEvent{Rune: 'd', Modifiers: core.ModCtrl},
		},
		{
			"ctrl+u half page",
			tea.KeyMsg{Type: tea.KeyCtrlU},
			core.KeyEvent{Rune: 'u', Modifiers: core.ModCtrl},
		},
		{
			"alt modifier",
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}, Alt: true},
			core.KeyEvent{Rune: 'g', Modifiers: core.ModAlt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertBubbleKey(tt.msg); got != tt.want {
				t.Errorf("convertBubbleKey = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRenderPageHighlightsSelection(t *testing.T) {
	pages := core.PageSet{corePage()}
	viewer := core.New(pages)
	m := New(viewer)

	// Select "quick brown"
	for _, r := range "vlsl" {
		viewer.HandleKey(core.KeyEvent{Rune: r})
	}

	out := m.renderPage()
	for _, word := range []string{"The", "quick", "brown", "fox"} {
		if !strings.Contains(out, word) {
			t.Errorf("rendered page missing %q", word)
		}
	}
}

func corePage() *core.PageWords {
	words := []core.Word{
		{Text: "The", Box: core.Rect{X: 0, Y: 0, Width: 21, Height: 14}},
		{Text: "quick", Box: core.Rect{X: 28, Y: 0, Width: 35, Height: 14}},
		{Text: "brown", Box: core.Rect{X: 70, Y: 0, Width: 35, Height: 14}},
		{Text: "fox", Box: core.Rect{X: 112, Y: 0, Width: 21, Height: 14}},
	}
	return core.NewPageWords(0, words, 500, 14)
}
