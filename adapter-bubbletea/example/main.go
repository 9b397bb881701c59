package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	viewer "github.com/ionut-t/goviewer/adapter-bubbletea"
	"github.com/ionut-t/goviewer/core"
	"github.com/ionut-t/goviewer/internal/state"
	"github.com/ionut-t/goviewer/textmap"
)

const messageDuration = 3 * time.Second

type Model struct {
	viewer viewer.Model
	store  *state.Store
	hash   string
}

func (m Model) Init() tea.Cmd {
	return m.viewer.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewer.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.savePosition()
			return m, tea.Quit
		}

	case viewer.CopyMsg:
		return m, m.viewer.DispatchMessage(fmt.Sprintf("%d bytes copied", len(msg.Content)), messageDuration)

	case viewer.TranslationMsg:
		// A real embedding would hand this to a translation client
		return m, m.viewer.DispatchMessage(fmt.Sprintf("translate: %q", msg.Content), messageDuration)

	case viewer.DefinitionMsg:
		return m, m.viewer.DispatchMessage(fmt.Sprintf("define: %q", msg.Word), messageDuration)

	case viewer.PageChangedMsg:
		m.savePosition()

	case viewer.ErrorMsg:
		return m, m.viewer.DispatchError(msg.Error, messageDuration)
	}

	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewer.View()
}

func (m Model) savePosition() {
	if m.store == nil || m.hash == "" {
		return
	}
	vp := m.viewer.Viewer().GetViewport()
	sel := m.viewer.Viewer().GetSelection()
	word := 0
	if sel.HasCursor() {
		word = sel.Cursor
	}
	_ = m.store.Set(m.hash, state.Position{Page: vp.CurrentPage, Word: word})
}

func loadPages(path string) ([]*core.PageWords, error) {
	if strings.EqualFold(filepath.Ext(path), ".epub") {
		return textmap.FromEPUB(path, textmap.DefaultOptions)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return textmap.Paginate(string(content), textmap.DefaultOptions), nil
}

// restorePosition reapplies a saved reading position. The cursor comes
// back by walking there in visual mode; leaving visual keeps it.
func restorePosition(session core.Viewer, pos state.Position) {
	if pos.Page > 0 {
		session.Apply(core.JumpToPage{Page: pos.Page})
	}
	if pos.Word > 0 {
		session.Apply(core.EnterVisual{})
		session.Apply(core.MoveCursor{Dir: core.DirRight, Count: pos.Word})
		session.Apply(core.ExitVisual{})
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: example <file.txt|file.epub>")
		os.Exit(1)
	}
	path := os.Args[1]

	pages, err := loadPages(path)
	if err != nil {
		log.Fatal(err)
	}

	session := core.New(core.PageSet(pages))

	store, err := state.NewStore()
	var hash string
	if err == nil {
		if hash, err = state.ComputeHash(path); err == nil {
			restorePosition(session, store.Get(hash))
		}
	}

	model := Model{
		viewer: viewer.New(session),
		store:  store,
		hash:   hash,
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
