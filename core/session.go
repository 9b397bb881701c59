package core

// WordSource supplies the read-only word index for each page on demand.
// It is implemented by the text-extraction collaborator.
type WordSource interface {
	PageWords(page int) *PageWords
	PageCount() int
}

// PageSet is a WordSource over a fixed, pre-extracted list of pages.
type PageSet []*PageWords

func (p PageSet) PageWords(page int) *PageWords {
	if page < 0 || page >= len(p) {
		return nil
	}
	return p[page]
}

func (p PageSet) PageCount() int {
	return len(p)
}

// State is the displayable session state read by UI collaborators.
type State struct {
	Mode        Mode
	StatusLine  string // e.g. "-- VISUAL --"
	CommandLine string // pending input, e.g. "42g"
}

// Viewer represents one open document session: modal input state,
// viewport and selection. All mutation goes through HandleKey/Apply.
type Viewer interface {
	// Event handling
	HandleKey(key KeyEvent)
	Apply(cmd Command)

	// Mode handling
	GetMode() ViewerMode
	SetNormalMode()
	SetVisualMode()
	IsNormalMode() bool
	IsVisualMode() bool

	// State read by rendering collaborators
	GetState() State
	GetViewport() Viewport
	GetSelection() Selection
	Page() *PageWords
	CurrentWord() (Word, bool)
	ComputeHighlights() []Rect
	SelectedText() string

	// Helpers used by modes
	UpdateStatus(string)
	UpdateCommand(string)

	// Effects for external collaborators
	GetEffectChan() <-chan Effect
	DispatchEffect(Effect)
}

// Concrete implementation of Viewer
type session struct {
	source      WordSource
	page        *PageWords
	currentMode ViewerMode
	modes       map[Mode]ViewerMode
	state       State
	viewport    Viewport
	sel         Selection

	effects chan Effect
}

// New creates a viewer session over the given word source.
func New(source WordSource) Viewer {
	s := &session{
		source:   source,
		viewport: initialViewport(source.PageCount()),
		sel:      emptySelection(),
		effects:  make(chan Effect, 100),
		modes:    make(map[Mode]ViewerMode),
	}
	s.page = source.PageWords(0)

	s.modes[NormalMode] = newNormalMode()
	s.modes[VisualMode] = newVisualMode()

	s.currentMode = s.modes[NormalMode]
	s.state.Mode = NormalMode
	s.currentMode.Enter(s)

	return s
}

// HandleKey feeds one key event through the active mode and applies the
// resulting command, if any. Processing is synchronous; keys are handled
// one at a time in arrival order.
func (s *session) HandleKey(key KeyEvent) {
	if cmd := s.currentMode.HandleKey(s, key); cmd != nil {
		s.Apply(cmd)
	}
}

// Apply dispatches a command to the viewport and selection, emitting
// effects for external collaborators. Invalid targets are clamped and
// missing selections are silent no-ops; nothing here fails.
func (s *session) Apply(cmd Command) {
	switch c := cmd.(type) {
	case JumpToPage:
		s.jumpToPage(c.Page)
	case JumpToStart:
		s.jumpToPage(0)
	case JumpToEnd:
		s.jumpToPage(s.viewport.PageCount - 1)

	case ScrollVertical:
		s.viewport.scrollBy(0, float64(c.Steps)*scrollStep)
	case ScrollHorizontal:
		s.viewport.scrollBy(float64(c.Steps)*scrollStep, 0)
	case ScrollHalfPage:
		if c.Dir == ScrollUp {
			s.viewport.scrollBy(0, -halfPageScroll)
		} else {
			s.viewport.scrollBy(0, halfPageScroll)
		}
	case ZoomIn:
		s.viewport.zoomIn()
	case ZoomOut:
		s.viewport.zoomOut()

	case EnterVisual:
		s.SetVisualMode()
	case ExitVisual:
		s.SetNormalMode()

	case MoveCursor:
		s.moveCursor(c.Dir, c.Count)
	case ToggleSelecting:
		s.sel = toggleSelecting(s.sel)
	case ClearSelection:
		s.sel.Anchor = noWord
		s.sel.Selecting = false

	case CopySelection:
		if text := selectedText(s.page, s.sel); text != "" {
			s.DispatchEffect(CopyToClipboardEffect{text: text})
		}
	case TranslateSelection:
		if text := selectedText(s.page, s.sel); text != "" {
			s.DispatchEffect(TranslationRequestEffect{text: text})
		}
	case LookupDefinition:
		if word, ok := s.CurrentWord(); ok {
			s.DispatchEffect(DefinitionRequestEffect{word: word.Text})
		}

	case FindForward:
		s.findCursor(c.Letter, true)
	case FindBackward:
		s.findCursor(c.Letter, false)
	}
}

// jumpToPage clamps the target and resets the page-scoped selection;
// anchor and cursor never survive a page change.
func (s *session) jumpToPage(page int) {
	page = s.viewport.clampPage(page)
	changed := page != s.viewport.CurrentPage
	s.viewport.CurrentPage = page
	s.viewport.ScrollX = 0
	s.viewport.ScrollY = 0
	s.page = s.source.PageWords(page)
	s.sel = emptySelection()
	if s.IsVisualMode() {
		s.placeCursor()
	}
	if changed {
		s.DispatchEffect(PageChangedEffect{page: page})
	}
}

func (s *session) moveCursor(dir Direction, count int) {
	// Boundary overshoot clamps silently; any actual movement, clamped
	// or not, is reported.
	sel, _ := advanceCursor(s.page, s.sel, dir, count)
	moved := sel.Cursor != s.sel.Cursor || (!s.sel.HasCursor() && sel.HasCursor())
	s.sel = sel
	if !moved {
		return
	}
	s.DispatchEffect(CursorMovedEffect{word: s.page.Word(sel.Cursor)})
}

func (s *session) findCursor(letter rune, forward bool) {
	next, ok := findWord(s.page, s.sel.Cursor, letter, forward)
	if !ok {
		return
	}
	s.sel.Cursor = next
	s.DispatchEffect(CursorMovedEffect{word: s.page.Word(next)})
}

// placeCursor ensures the visual cursor points at a word on the current
// page; it keeps an existing valid cursor across visual sessions.
func (s *session) placeCursor() {
	if s.page == nil || s.page.WordCount() == 0 {
		s.sel.Cursor = noWord
		return
	}
	if s.sel.Cursor < 0 || s.sel.Cursor >= s.page.WordCount() {
		s.sel.Cursor = 0
	}
}

func (s *session) setMode(modeName Mode) error {
	newMode, ok := s.modes[modeName]
	if !ok {
		return ErrInvalidMode
	}

	if s.currentMode != nil {
		s.currentMode.Exit(s)
	}

	s.currentMode = newMode
	s.state.Mode = modeName
	s.currentMode.Enter(s)
	s.DispatchEffect(ModeChangedEffect{mode: modeName})

	return nil
}

func (s *session) SetNormalMode() {
	// Leaving visual clears the anchor but not the cursor
	s.sel.Anchor = noWord
	s.sel.Selecting = false
	s.setMode(NormalMode)
}

func (s *session) SetVisualMode() {
	s.placeCursor()
	s.setMode(VisualMode)
}

func (s *session) GetMode() ViewerMode {
	return s.currentMode
}

func (s *session) IsNormalMode() bool {
	return s.state.Mode == NormalMode
}

func (s *session) IsVisualMode() bool {
	return s.state.Mode == VisualMode
}

func (s *session) GetState() State {
	return s.state
}

func (s *session) GetViewport() Viewport {
	return s.viewport
}

func (s *session) GetSelection() Selection {
	return s.sel
}

func (s *session) Page() *PageWords {
	return s.page
}

// CurrentWord returns the word under the visual cursor.
func (s *session) CurrentWord() (Word, bool) {
	if s.page == nil || !s.sel.HasCursor() || s.sel.Cursor >= s.page.WordCount() {
		return Word{}, false
	}
	return s.page.Word(s.sel.Cursor), true
}

func (s *session) ComputeHighlights() []Rect {
	return computeHighlights(s.page, s.sel)
}

func (s *session) SelectedText() string {
	return selectedText(s.page, s.sel)
}

func (s *session) UpdateStatus(status string) {
	s.state.StatusLine = status
}

func (s *session) UpdateCommand(cmd string) {
	s.state.CommandLine = cmd
}

func (s *session) GetEffectChan() <-chan Effect {
	return s.effects
}
