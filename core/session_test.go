package core

import (
	"testing"
)

// testSource builds a document of n identical pages.
func testSource(n int) PageSet {
	pages := make(PageSet, n)
	for i := range n {
		pages[i] = makePage(i,
			[]string{"The", "quick", "brown", "fox"},
			[]string{"jumps", "over", "the", "lazy", "dog"},
		)
	}
	return pages
}

func drainEffects(v Viewer) []Effect {
	var out []Effect
	for {
		select {
		case e := <-v.GetEffectChan():
			out = append(out, e)
		default:
			return out
		}
	}
}

func press(v Viewer, keys string) {
	for _, r := range keys {
		v.HandleKey(KeyEvent{Rune: r})
	}
}

func pressKey(v Viewer, key KeyCode) {
	v.HandleKey(KeyEvent{Key: key})
}

func TestJumpToPageClamps(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{"in range", 5, 5},
		{"negative", -3, 0},
		{"past end", 42, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(testSource(10))
			v.Apply(JumpToPage{Page: tt.page})
			if got := v.GetViewport().CurrentPage; got != tt.want {
				t.Errorf("CurrentPage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestJumpResetsSelection(t *testing.T) {
	v := New(testSource(10))
	press(v, "vsll")
	if len(v.ComputeHighlights()) == 0 {
		t.Fatal("expected an active selection before the jump")
	}

	v.Apply(JumpToPage{Page: 3})
	if got := v.ComputeHighlights(); len(got) != 0 {
		t.Errorf("expected empty highlights after jump, got %d", len(got))
	}
	if v.GetSelection().HasAnchor() {
		t.Error("anchor should not survive a page change")
	}
}

func TestJumpToStartAndEnd(t *testing.T) {
	v := New(testSource(10))
	v.Apply(JumpToPage{Page: 7})

	v.Apply(JumpToStart{})
	if got := v.GetViewport().CurrentPage; got != 0 {
		t.Errorf("CurrentPage = %d, want 0", got)
	}

	v.Apply(JumpToEnd{})
	if got := v.GetViewport().CurrentPage; got != 9 {
		t.Errorf("CurrentPage = %d, want 9", got)
	}
}

func TestJumpEmitsPageChangedOnce(t *testing.T) {
	v := New(testSource(5))
	drainEffects(v)

	v.Apply(JumpToPage{Page: 2})
	v.Apply(JumpToPage{Page: 2}) // same page, no event

	var changes int
	for _, e := range drainEffects(v) {
		if _, ok := e.(PageChangedEffect); ok {
			changes++
		}
	}
	if changes != 1 {
		t.Errorf("PageChangedEffect count = %d, want 1", changes)
	}
}

func TestScrollClamping(t *testing.T) {
	v := New(testSource(1))

	v.Apply(ScrollVertical{Steps: 100})
	if got := v.GetViewport().ScrollY; got != 1 {
		t.Errorf("ScrollY = %f, want 1", got)
	}

	v.Apply(ScrollVertical{Steps: -200})
	if got := v.GetViewport().ScrollY; got != 0 {
		t.Errorf("ScrollY = %f, want 0", got)
	}

	v.Apply(ScrollHorizontal{Steps: 3})
	want := 3 * scrollStep
	if got := v.GetViewport().ScrollX; !almostEqual(got, want) {
		t.Errorf("ScrollX = %f, want %f", got, want)
	}
}

func TestScrollDoesNotChangePage(t *testing.T) {
	v := New(testSource(3))
	v.Apply(ScrollVertical{Steps: 1000})
	if got := v.GetViewport().CurrentPage; got != 0 {
		t.Errorf("CurrentPage = %d, want 0", got)
	}
}

func TestZoomClamping(t *testing.T) {
	v := New(testSource(1))

	for range 100 {
		v.Apply(ZoomIn{})
	}
	if got := v.GetViewport().Zoom; got != maxZoom {
		t.Errorf("Zoom = %f, want %f", got, maxZoom)
	}

	for range 100 {
		v.Apply(ZoomOut{})
	}
	if got := v.GetViewport().Zoom; got != minZoom {
		t.Errorf("Zoom = %f, want %f", got, minZoom)
	}
}

func TestCopyWithoutSelectionIsNoOp(t *testing.T) {
	v := New(testSource(1))
	drainEffects(v)

	v.Apply(CopySelection{})
	v.Apply(TranslateSelection{})

	for _, e := range drainEffects(v) {
		switch e.(type) {
		case CopyToClipboardEffect, TranslationRequestEffect:
			t.Errorf("unexpected effect %T without a selection", e)
		}
	}
}

func TestMoveCursorPlacesCursor(t *testing.T) {
	v := New(testSource(1))
	v.Apply(EnterVisual{})

	if sel := v.GetSelection(); sel.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0 after entering visual", sel.Cursor)
	}

	v.Apply(MoveCursor{Dir: DirRight, Count: 2})
	if sel := v.GetSelection(); sel.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", sel.Cursor)
	}
}

func TestLeavingVisualKeepsCursor(t *testing.T) {
	v := New(testSource(1))
	press(v, "vlls")
	press(v, "v") // exit visual

	sel := v.GetSelection()
	if sel.HasAnchor() || sel.Selecting {
		t.Error("leaving visual should clear the anchor")
	}
	if sel.Cursor != 2 {
		t.Errorf("cursor = %d, want 2 (cursor survives leaving visual)", sel.Cursor)
	}

	// Re-entering visual keeps the old cursor position
	press(v, "v")
	if got := v.GetSelection().Cursor; got != 2 {
		t.Errorf("cursor = %d, want 2 after re-entering visual", got)
	}
}

func TestRestoredPositionViaCommands(t *testing.T) {
	// The sequence an embedding program uses to reapply a saved
	// page+word position through the public command set.
	v := New(testSource(10))
	v.Apply(JumpToPage{Page: 4})
	v.Apply(EnterVisual{})
	v.Apply(MoveCursor{Dir: DirRight, Count: 6})
	v.Apply(ExitVisual{})

	if got := v.GetViewport().CurrentPage; got != 4 {
		t.Errorf("CurrentPage = %d, want 4", got)
	}
	if got := v.GetSelection().Cursor; got != 6 {
		t.Errorf("cursor = %d, want 6", got)
	}
	if !v.IsNormalMode() {
		t.Error("restoring a position must end in normal mode")
	}
}

func almostEqual(a, b float64) bool {
	return distance(a, b) < 1e-9
}
