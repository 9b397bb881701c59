package textmap

import (
	"strings"
	"testing"
)

func TestFromTextSegmentsWords(t *testing.T) {
	page := FromText("The quick, brown fox!", DefaultOptions)

	want := []string{"The", "quick", "brown", "fox"}
	if got := page.WordCount(); got != len(want) {
		t.Fatalf("WordCount = %d, want %d", got, len(want))
	}
	for i, text := range want {
		if got := page.Word(i).Text; got != text {
			t.Errorf("Word(%d).Text = %q, want %q", i, got, text)
		}
	}
}

func TestFromTextReadingOrderBoxes(t *testing.T) {
	page := FromText("one two three", DefaultOptions)

	for i := 1; i < page.WordCount(); i++ {
		prev, cur := page.Word(i-1).Box, page.Word(i).Box
		if cur.X <= prev.X && cur.Y == prev.Y {
			t.Errorf("word %d does not advance in reading order: %+v after %+v", i, cur, prev)
		}
	}
	if got := page.LineCount(); got != 1 {
		t.Errorf("LineCount = %d, want 1", got)
	}
}

func TestFromTextWraps(t *testing.T) {
	opts := DefaultOptions
	opts.WrapWidth = 10
	page := FromText("alpha beta gamma delta", opts)

	if got := page.LineCount(); got < 2 {
		t.Errorf("LineCount = %d, want at least 2 with narrow wrap", got)
	}
	// No word may start beyond the wrap width
	limit := float64(opts.WrapWidth) * opts.CellWidth
	for i := range page.WordCount() {
		if x := page.Word(i).Box.X; x >= limit {
			t.Errorf("word %d starts at %f, beyond wrap limit %f", i, x, limit)
		}
	}
}

func TestNewlinesBreakLines(t *testing.T) {
	page := FromText("first line\nsecond line\n\nnew paragraph", DefaultOptions)

	if got := page.LineCount(); got != 3 {
		t.Fatalf("LineCount = %d, want 3", got)
	}
	// The paragraph break leaves a blank line in the layout
	lastLine := page.Word(page.WordCount() - 1).Box.Y
	secondLine := page.Word(2).Box.Y
	if gap := lastLine - secondLine; gap != 2*DefaultOptions.LineHeight {
		t.Errorf("paragraph gap = %f, want %f", gap, 2*DefaultOptions.LineHeight)
	}
}

func TestPaginateSplitsPages(t *testing.T) {
	opts := DefaultOptions
	opts.WrapWidth = 12
	opts.LinesPerPage = 2

	pages := Paginate("one two three four five six seven eight nine ten", opts)
	if len(pages) < 2 {
		t.Fatalf("len(pages) = %d, want at least 2", len(pages))
	}

	for i, page := range pages {
		if got := page.Page(); got != i {
			t.Errorf("pages[%d].Page() = %d, want %d", i, got, i)
		}
		if got := page.LineCount(); got > opts.LinesPerPage {
			t.Errorf("pages[%d] has %d lines, want at most %d", i, got, opts.LinesPerPage)
		}
	}
}

func TestPageLocalOffsets(t *testing.T) {
	opts := DefaultOptions
	opts.WrapWidth = 8
	opts.LinesPerPage = 1

	pages := Paginate("aaa bbb ccc ddd", opts)
	if len(pages) < 2 {
		t.Fatalf("len(pages) = %d, want at least 2", len(pages))
	}
	for i, page := range pages {
		if page.WordCount() == 0 {
			continue
		}
		if got := page.Word(0).Offset; got != 0 {
			t.Errorf("pages[%d] first word offset = %d, want 0", i, got)
		}
	}
}

func TestPaginateEmptyText(t *testing.T) {
	pages := Paginate("", DefaultOptions)
	if len(pages) != 1 {
		t.Fatalf("len(pages) = %d, want 1 empty page", len(pages))
	}
	if got := pages[0].WordCount(); got != 0 {
		t.Errorf("WordCount = %d, want 0", got)
	}
}

func TestUnicodeWords(t *testing.T) {
	page := FromText("naïve café résumé", DefaultOptions)
	if got := page.WordCount(); got != 3 {
		t.Fatalf("WordCount = %d, want 3", got)
	}
	if got := page.Word(0).Text; got != "naïve" {
		t.Errorf("Word(0).Text = %q, want %q", got, "naïve")
	}
}

func TestExtractTextFromHTML(t *testing.T) {
	html := `<html><body><h1>Title</h1><p>First paragraph.</p><p>Second one.</p></body></html>`
	text := extractTextFromHTML(html)

	for _, want := range []string{"Title", "First paragraph.", "Second one."} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text missing %q: %q", want, text)
		}
	}
	// Block elements separate paragraphs
	if !strings.Contains(text, "\n") {
		t.Error("expected newlines between block elements")
	}
}
