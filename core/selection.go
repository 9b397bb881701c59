package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// noWord marks an absent anchor or cursor.
const noWord = -1

// Selection is the anchor/cursor pair over the current page's words.
// Anchor and cursor are always indices into the same page's word map, or
// noWord when absent; selections never span pages.
type Selection struct {
	Anchor    int
	Cursor    int
	Selecting bool
}

func emptySelection() Selection {
	return Selection{Anchor: noWord, Cursor: noWord}
}

// HasAnchor reports whether a selection range is active.
func (s Selection) HasAnchor() bool {
	return s.Anchor != noWord
}

// HasCursor reports whether the word cursor is placed.
func (s Selection) HasCursor() bool {
	return s.Cursor != noWord
}

// Range returns the normalized inclusive word-index range of the
// selection. ok is false when no anchor is set.
func (s Selection) Range() (start, end int, ok bool) {
	if !s.HasAnchor() || !s.HasCursor() {
		return 0, 0, false
	}
	if s.Anchor <= s.Cursor {
		return s.Anchor, s.Cursor, true
	}
	return s.Cursor, s.Anchor, true
}

// advanceCursor moves the cursor count words in the given direction,
// clamping at page boundaries. Left/Right follow reading order; Up/Down
// move to the closest word on the adjacent layout line. Crossing a page
// boundary is a no-op in the single-page selection model.
func advanceCursor(page *PageWords, sel Selection, dir Direction, count int) (Selection, error) {
	if page == nil || page.WordCount() == 0 {
		return sel, ErrNoWords
	}
	if !sel.HasCursor() {
		sel.Cursor = 0
		return sel, nil
	}

	var err error
	for range count {
		var next int
		next, err = stepCursor(page, sel.Cursor, dir)
		if err != nil {
			break
		}
		sel.Cursor = next
	}
	return sel, err
}

func stepCursor(page *PageWords, cursor int, dir Direction) (int, error) {
	switch dir {
	case DirLeft:
		if cursor == 0 {
			return cursor, ErrStartOfPage
		}
		return cursor - 1, nil
	case DirRight:
		if cursor >= page.WordCount()-1 {
			return cursor, ErrEndOfPage
		}
		return cursor + 1, nil
	case DirUp:
		line := page.LineOf(cursor)
		if line == 0 {
			return cursor, ErrStartOfPage
		}
		return page.ClosestOnLine(line-1, page.Word(cursor).Box.CenterX())
	case DirDown:
		line := page.LineOf(cursor)
		if line >= page.LineCount()-1 {
			return cursor, ErrEndOfPage
		}
		return page.ClosestOnLine(line+1, page.Word(cursor).Box.CenterX())
	}
	return cursor, ErrInvalidPosition
}

// toggleSelecting flips the selecting flag. Turning it on fixes the
// anchor at the cursor if absent; turning it off clears the anchor.
func toggleSelecting(sel Selection) Selection {
	if sel.Selecting {
		sel.Selecting = false
		sel.Anchor = noWord
		return sel
	}
	sel.Selecting = true
	if !sel.HasAnchor() {
		sel.Anchor = sel.Cursor
	}
	return sel
}

// computeHighlights returns the bounding boxes of every word between
// anchor and cursor inclusive, in reading order. It is a pure function of
// the selection and word map and is safe to call on every redraw.
func computeHighlights(page *PageWords, sel Selection) []Rect {
	start, end, ok := sel.Range()
	if !ok || page == nil || page.WordCount() == 0 {
		return nil
	}
	rects := make([]Rect, 0, end-start+1)
	for i := start; i <= end; i++ {
		rects = append(rects, page.Word(i).Box)
	}
	return rects
}

// selectedText concatenates the selected words in reading order, joined
// by single spaces. This is the value handed to the clipboard,
// translation and dictionary collaborators.
func selectedText(page *PageWords, sel Selection) string {
	start, end, ok := sel.Range()
	if !ok || page == nil || page.WordCount() == 0 {
		return ""
	}
	var b strings.Builder
	for i := start; i <= end; i++ {
		if i > start {
			b.WriteByte(' ')
		}
		b.WriteString(page.Word(i).Text)
	}
	return b.String()
}

// findWord scans from the cursor for the next word starting with letter.
// The match is case-insensitive. It returns the cursor unchanged when
// nothing matches before the page edge.
func findWord(page *PageWords, cursor int, letter rune, forward bool) (int, bool) {
	if page == nil || page.WordCount() == 0 || cursor == noWord {
		return cursor, false
	}
	letter = unicode.ToLower(letter)
	step := 1
	if !forward {
		step = -1
	}
	for i := cursor + step; i >= 0 && i < page.WordCount(); i += step {
		first, _ := utf8.DecodeRuneInString(page.Word(i).Text)
		if unicode.ToLower(first) == letter {
			return i, true
		}
	}
	return cursor, false
}
