package core

// Rect is an axis-aligned box in page-local units.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the box.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the vertical center of the box.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Word is the minimal selectable text unit on a page, as produced by a
// text-extraction collaborator.
type Word struct {
	Text   string
	Box    Rect
	Page   int
	Offset int // rune offset of the word in the page's source text
}

// lineSpan is a run of word indices sharing one layout line.
type lineSpan struct {
	start   int // first word index on the line
	end     int // one past the last word index on the line
	yCenter float64
}

// Fraction of the average word height within which two words are
// considered to sit on the same line.
const lineGroupingThreshold = 0.5

// PageWords holds all words of a single page in reading order, grouped
// into layout lines for up/down navigation. It is immutable once built.
type PageWords struct {
	page   int
	words  []Word
	lines  []lineSpan
	lineOf []int // word index -> line index
	width  float64
	height float64
}

// NewPageWords builds a PageWords from words already sorted in reading
// order. Line grouping is derived from the word boxes.
func NewPageWords(page int, words []Word, width, height float64) *PageWords {
	p := &PageWords{
		page:   page,
		words:  words,
		lineOf: make([]int, len(words)),
		width:  width,
		height: height,
	}
	p.groupIntoLines()
	return p
}

func (p *PageWords) groupIntoLines() {
	if len(p.words) == 0 {
		return
	}

	var totalHeight float64
	for _, w := range p.words {
		totalHeight += w.Box.Height
	}
	threshold := totalHeight / float64(len(p.words)) * lineGroupingThreshold

	start := 0
	yCenter := p.words[0].Box.CenterY()
	for i := 1; i < len(p.words); i++ {
		cy := p.words[i].Box.CenterY()
		if cy-yCenter > threshold || yCenter-cy > threshold {
			p.closeLine(start, i, yCenter)
			start = i
			yCenter = cy
		} else {
			// Running average keeps slightly tilted lines together
			yCenter = (yCenter*float64(i-start) + cy) / float64(i-start+1)
		}
	}
	p.closeLine(start, len(p.words), yCenter)
}

func (p *PageWords) closeLine(start, end int, yCenter float64) {
	line := len(p.lines)
	p.lines = append(p.lines, lineSpan{start: start, end: end, yCenter: yCenter})
	for i := start; i < end; i++ {
		p.lineOf[i] = line
	}
}

// Page returns the page index this word map belongs to.
func (p *PageWords) Page() int {
	return p.page
}

// WordCount returns the number of words on the page.
func (p *PageWords) WordCount() int {
	return len(p.words)
}

// Word returns the word at the given index. The index must be in
// [0, WordCount).
func (p *PageWords) Word(i int) Word {
	return p.words[i]
}

// Words returns the full word list in reading order.
func (p *PageWords) Words() []Word {
	return p.words
}

// LineCount returns the number of layout lines on the page.
func (p *PageWords) LineCount() int {
	return len(p.lines)
}

// LineOf returns the layout line the word at index i belongs to.
func (p *PageWords) LineOf(i int) int {
	return p.lineOf[i]
}

// ClosestOnLine returns the index of the word on the given line whose
// horizontal center is closest to x.
func (p *PageWords) ClosestOnLine(line int, x float64) (int, error) {
	if line < 0 || line >= len(p.lines) {
		return 0, ErrInvalidPosition
	}
	span := p.lines[line]
	best := span.start
	bestDist := distance(p.words[best].Box.CenterX(), x)
	for i := span.start + 1; i < span.end; i++ {
		if d := distance(p.words[i].Box.CenterX(), x); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, nil
}

// Size returns the page dimensions in page-local units.
func (p *PageWords) Size() (width, height float64) {
	return p.width, p.height
}

func distance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
