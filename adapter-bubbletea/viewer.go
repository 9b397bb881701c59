package bubble_adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/goviewer/core"
)

type Theme struct {
	NormalModeStyle  lipgloss.Style
	VisualModeStyle  lipgloss.Style
	StatusLineStyle  lipgloss.Style
	CommandLineStyle lipgloss.Style
	TextStyle        lipgloss.Style
	CursorStyle      lipgloss.Style
	SelectionStyle   lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	VisualModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	TextStyle:        lipgloss.NewStyle(),
	CursorStyle:      lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
	SelectionStyle:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// --- Messages emitted for the embedding program ---

// CopyMsg reports that selected text was written to the clipboard.
type CopyMsg struct {
	Content string
}

// TranslationMsg carries a translation request for the embedding program
// to resolve; the adapter performs no network access.
type TranslationMsg struct {
	Content string
}

// DefinitionMsg carries a dictionary lookup request for the embedding
// program to resolve.
type DefinitionMsg struct {
	Word string
}

// PageChangedMsg reports a jump to a new page.
type PageChangedMsg struct {
	Page int
}

type ErrorMsg struct {
	Error error
}

type effectMsg struct {
	effect core.Effect
}

type clearMsg struct{}

type Model struct {
	viewer         core.Viewer
	viewport       viewport.Model
	width          int
	height         int
	theme          Theme
	showStatusLine bool
	message        string
	err            error
	clearMsgCancel context.CancelFunc
}

// New creates an adapter model around a viewer session.
func New(viewer core.Viewer) Model {
	vp := viewport.New(80, 24)
	return Model{
		viewer:         viewer,
		viewport:       vp,
		width:          80,
		height:         24,
		theme:          DefaultTheme,
		showStatusLine: true,
	}
}

func (m *Model) SetTheme(theme Theme) {
	m.theme = theme
}

func (m *Model) ShowStatusLine(show bool) {
	m.showStatusLine = show
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	contentHeight := height
	if m.showStatusLine {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = contentHeight
	m.syncViewport()
}

// Viewer exposes the underlying session, e.g. to apply restored positions.
func (m *Model) Viewer() core.Viewer {
	return m.viewer
}

func (m Model) Init() tea.Cmd {
	return m.listenForEffects()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.viewer.HandleKey(convertBubbleKey(msg))
		m.syncViewport()

	case effectMsg:
		cmds = append(cmds, m.handleEffect(msg.effect), m.listenForEffects())

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil
	}

	return m, tea.Batch(cmds...)
}

// handleEffect executes the effects the adapter owns (clipboard) and
// forwards the rest to the embedding program.
func (m *Model) handleEffect(effect core.Effect) tea.Cmd {
	switch effect := effect.(type) {
	case core.CopyToClipboardEffect:
		text := effect.Value()
		return func() tea.Msg {
			if err := clipboard.WriteAll(text); err != nil {
				return ErrorMsg{Error: core.NewError(core.ErrCopyFailedId, err)}
			}
			return CopyMsg{Content: text}
		}

	case core.TranslationRequestEffect:
		text := effect.Value()
		return func() tea.Msg {
			return TranslationMsg{Content: text}
		}

	case core.DefinitionRequestEffect:
		word := effect.Value()
		return func() tea.Msg {
			return DefinitionMsg{Word: word}
		}

	case core.PageChangedEffect:
		page := effect.Value()
		return func() tea.Msg {
			return PageChangedMsg{Page: page}
		}
	}

	return nil
}

func (m *Model) listenForEffects() tea.Cmd {
	return func() tea.Msg {
		return effectMsg{effect: <-m.viewer.GetEffectChan()}
	}
}

// DispatchMessage displays a transient message in the status area.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil
	return m.dispatchClearMsg(duration)
}

// DispatchError displays a transient error in the status area.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.err = err
	m.message = ""
	return m.dispatchClearMsg(duration)
}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		select {
		case <-time.After(duration):
			return clearMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) View() string {
	m.viewport.SetContent(m.renderPage())

	if !m.showStatusLine {
		return m.viewport.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusLine())
}

// renderPage lays the current page's words back out line by line,
// styling the selection range and the word under the cursor.
func (m Model) renderPage() string {
	page := m.viewer.Page()
	if page == nil || page.WordCount() == 0 {
		return m.theme.TextStyle.Render("(empty page)")
	}

	sel := m.viewer.GetSelection()
	selStart, selEnd, hasSelection := sel.Range()
	inVisual := m.viewer.IsVisualMode()

	var b strings.Builder
	line := 0
	for i := range page.WordCount() {
		if l := page.LineOf(i); l != line {
			b.WriteString(strings.Repeat("\n", l-line))
			line = l
		} else if i > 0 {
			b.WriteByte(' ')
		}

		word := page.Word(i).Text
		switch {
		case inVisual && sel.HasCursor() && i == sel.Cursor:
			b.WriteString(m.theme.CursorStyle.Render(word))
		case hasSelection && i >= selStart && i <= selEnd:
			b.WriteString(m.theme.SelectionStyle.Render(word))
		default:
			b.WriteString(m.theme.TextStyle.Render(word))
		}
	}
	return b.String()
}

func (m Model) statusLine() string {
	state := m.viewer.GetState()
	vp := m.viewer.GetViewport()

	var modeStyle lipgloss.Style
	if m.viewer.IsVisualMode() {
		modeStyle = m.theme.VisualModeStyle
	} else {
		modeStyle = m.theme.NormalModeStyle
	}
	mode := modeStyle.Render(" " + state.StatusLine + " ")

	var middle string
	if m.err != nil {
		middle = m.theme.ErrorStyle.Render(m.err.Error())
	} else if m.message != "" {
		middle = m.theme.MessageStyle.Render(m.message)
	}

	pending := m.theme.CommandLineStyle.Render(state.CommandLine)
	pageInfo := m.theme.StatusLineStyle.Render(
		fmt.Sprintf(" %d/%d ", vp.CurrentPage+1, vp.PageCount),
	)

	left := mode
	right := pending + pageInfo
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	spacer := m.theme.StatusLineStyle.Render(strings.Repeat(" ", gap))

	return left + middle + spacer + right
}

// syncViewport maps the core scroll state onto the terminal viewport and
// keeps the visual cursor in view.
func (m *Model) syncViewport() {
	page := m.viewer.Page()
	if page == nil {
		m.viewport.GotoTop()
		return
	}

	totalLines := page.LineCount()
	maxOffset := totalLines - m.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}

	sel := m.viewer.GetSelection()
	if m.viewer.IsVisualMode() && sel.HasCursor() {
		// Follow the cursor line
		cursorLine := page.LineOf(sel.Cursor)
		if cursorLine < m.viewport.YOffset {
			m.viewport.SetYOffset(cursorLine)
		} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
		}
		return
	}

	vp := m.viewer.GetViewport()
	m.viewport.SetYOffset(int(vp.ScrollY*float64(maxOffset) + 0.5))
}
