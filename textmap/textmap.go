// Package textmap builds per-page word indexes for the viewer core from
// plain text and EPUB documents. Extracted words are laid out into
// synthetic page-local boxes using monospace metrics, so the core's
// geometry-based navigation works the same as over a rendered page.
package textmap

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/ionut-t/goviewer/core"
)

// Options control the synthetic page layout.
type Options struct {
	WrapWidth    int     // characters per line before wrapping
	LinesPerPage int     // lines per page when paginating
	CellWidth    float64 // page units per character cell
	LineHeight   float64 // page units per line
}

// DefaultOptions approximates a readable monospace page.
var DefaultOptions = Options{
	WrapWidth:    72,
	LinesPerPage: 36,
	CellWidth:    7.2,
	LineHeight:   14,
}

func (o Options) withDefaults() Options {
	if o.WrapWidth <= 0 {
		o.WrapWidth = DefaultOptions.WrapWidth
	}
	if o.LinesPerPage <= 0 {
		o.LinesPerPage = DefaultOptions.LinesPerPage
	}
	if o.CellWidth <= 0 {
		o.CellWidth = DefaultOptions.CellWidth
	}
	if o.LineHeight <= 0 {
		o.LineHeight = DefaultOptions.LineHeight
	}
	return o
}

// FromText builds a single page holding all of text.
func FromText(text string, opts Options) *core.PageWords {
	b := newPageBuilder(opts, 0, false)
	for _, seg := range segments(text) {
		b.place(seg)
	}
	return b.finish()[0]
}

// Paginate splits text into pages of LinesPerPage lines each.
func Paginate(text string, opts Options) []*core.PageWords {
	return paginateFrom(text, opts, 0)
}

func paginateFrom(text string, opts Options, startPage int) []*core.PageWords {
	b := newPageBuilder(opts, startPage, true)
	for _, seg := range segments(text) {
		b.place(seg)
	}
	return b.finish()
}

// segment is one word of the source text with its layout inputs.
type segment struct {
	text   string
	offset int // rune offset in the source text
	width  int // display cells
	breaks int // newlines seen since the previous word
}

// segments splits text into words on Unicode word boundaries, dropping
// whitespace and punctuation-only runs the way the page extractor of a
// rendered document would.
func segments(text string) []segment {
	var segs []segment
	state := -1
	offset := 0
	breaks := 0
	rest := text
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		if isWord(seg) {
			segs = append(segs, segment{
				text:   seg,
				offset: offset,
				width:  uniseg.StringWidth(seg),
				breaks: breaks,
			})
			breaks = 0
		} else {
			breaks += strings.Count(seg, "\n")
		}
		offset += utf8.RuneCountInString(seg)
	}
	return segs
}

func isWord(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// pageBuilder lays segments onto synthetic pages.
type pageBuilder struct {
	opts      Options
	paginate  bool
	pages     []*core.PageWords
	words     []core.Word
	page      int
	line      int
	col       int
	maxLine   int
	pageStart int // rune offset of the first word on the page
}

func newPageBuilder(opts Options, startPage int, paginate bool) *pageBuilder {
	return &pageBuilder{
		opts:     opts.withDefaults(),
		paginate: paginate,
		page:     startPage,
	}
}

func (b *pageBuilder) place(seg segment) {
	// A single newline continues the paragraph on a fresh line; two or
	// more leave one blank line between paragraphs.
	breaks := seg.breaks
	if breaks > 2 {
		breaks = 2
	}
	for range breaks {
		b.newLine()
	}
	if b.col > 0 && b.col+seg.width > b.opts.WrapWidth {
		b.newLine()
	}

	if len(b.words) == 0 {
		b.pageStart = seg.offset
	}
	b.words = append(b.words, core.Word{
		Text:   seg.text,
		Page:   b.page,
		Offset: seg.offset - b.pageStart,
		Box: core.Rect{
			X:      float64(b.col) * b.opts.CellWidth,
			Y:      float64(b.line) * b.opts.LineHeight,
			Width:  float64(seg.width) * b.opts.CellWidth,
			Height: b.opts.LineHeight,
		},
	})
	if b.line > b.maxLine {
		b.maxLine = b.line
	}
	b.col += seg.width + 1
}

func (b *pageBuilder) newLine() {
	if len(b.words) == 0 {
		// Drop blank runs at the top of a page
		b.line = 0
		b.col = 0
		return
	}
	b.line++
	b.col = 0
	if b.paginate && b.line >= b.opts.LinesPerPage {
		b.closePage()
	}
}

func (b *pageBuilder) closePage() {
	width := float64(b.opts.WrapWidth) * b.opts.CellWidth
	height := float64(b.maxLine+1) * b.opts.LineHeight
	b.pages = append(b.pages, core.NewPageWords(b.page, b.words, width, height))
	b.page++
	b.words = nil
	b.line = 0
	b.col = 0
	b.maxLine = 0
}

func (b *pageBuilder) finish() []*core.PageWords {
	if len(b.words) > 0 || len(b.pages) == 0 {
		b.closePage()
	}
	return b.pages
}
