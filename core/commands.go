package core

// Command is a semantic action produced by a mode from raw key events.
// Commands are applied by the viewer's dispatcher, which owns all state
// mutation; modes never touch the viewport or selection directly.
type Command any

// Direction of a word-cursor movement in visual mode.
type Direction int

const (
	DirLeft  Direction = iota // previous word in reading order
	DirRight                  // next word in reading order
	DirUp                     // closest word on the line above
	DirDown                   // closest word on the line below
)

// ScrollDir is a vertical scroll direction for half-page jumps.
type ScrollDir int

const (
	ScrollUp ScrollDir = iota
	ScrollDown
)

// --- Navigation ---

// JumpToPage jumps to the given page; out-of-range targets are clamped.
type JumpToPage struct {
	Page int
}

// JumpToStart jumps to the first page.
type JumpToStart struct{}

// JumpToEnd jumps to the last page.
type JumpToEnd struct{}

// ScrollVertical scrolls the viewport by Steps scroll units. Negative
// steps scroll up. Scrolling never changes the current page.
type ScrollVertical struct {
	Steps int
}

// ScrollHorizontal scrolls the viewport by Steps scroll units. Negative
// steps scroll left.
type ScrollHorizontal struct {
	Steps int
}

// ScrollHalfPage scrolls half a viewport up or down.
type ScrollHalfPage struct {
	Dir ScrollDir
}

type ZoomIn struct{}

type ZoomOut struct{}

// --- Mode changes ---

type EnterVisual struct{}

type ExitVisual struct{}

// --- Visual mode ---

// MoveCursor moves the word cursor Count times in the given direction,
// clamping at page boundaries.
type MoveCursor struct {
	Dir   Direction
	Count int
}

// ToggleSelecting toggles the selection flag. Turning it on fixes the
// anchor at the current cursor; turning it off clears the anchor.
type ToggleSelecting struct{}

// ClearSelection drops the anchor without leaving visual mode.
type ClearSelection struct{}

// CopySelection requests a clipboard write of the selected text.
// Without an active selection it is a no-op.
type CopySelection struct{}

// TranslateSelection requests a translation of the selected text.
// Without an active selection it is a no-op.
type TranslateSelection struct{}

// LookupDefinition requests a definition of the word under the cursor.
type LookupDefinition struct{}

// FindForward moves the cursor to the next word starting with Letter.
type FindForward struct {
	Letter rune
}

// FindBackward moves the cursor to the previous word starting with Letter.
type FindBackward struct {
	Letter rune
}
