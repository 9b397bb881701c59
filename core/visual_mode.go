package core

type visualMode struct {
	pending pendingInput
}

func newVisualMode() ViewerMode {
	return &visualMode{}
}

func (m *visualMode) Name() Mode { return VisualMode }

func (m *visualMode) Enter(viewer Viewer) {
	viewer.UpdateStatus("-- VISUAL --")
	viewer.UpdateCommand("")
	m.pending.reset()
}

func (m *visualMode) Exit(viewer Viewer) {
	m.pending.reset()
	viewer.UpdateCommand("")
}

func (m *visualMode) HandleKey(viewer Viewer, key KeyEvent) Command {
	if key.Modifiers&ModCtrl != 0 {
		switch key.Rune {
		case 'd':
			m.pending.discard(viewer)
			return ScrollHalfPage{Dir: ScrollDown}
		case 'u':
			m.pending.discard(viewer)
			return ScrollHalfPage{Dir: ScrollUp}
		}
		return nil
	}

	// --- Pending find sequences (f{r} / F{r}) ---
	if m.pending.seq == 'f' || m.pending.seq == 'F' {
		forward := m.pending.seq == 'f'
		m.pending.reset()
		viewer.UpdateCommand("")
		if key.Rune == 0 {
			// Special keys abort the find
			return nil
		}
		if forward {
			return FindForward{Letter: key.Rune}
		}
		return FindBackward{Letter: key.Rune}
	}

	// --- Pending 'g' sequence ---
	if m.pending.seq == 'g' {
		if key.Rune == 'g' {
			count, explicit := m.pending.takeCount()
			m.pending.reset()
			viewer.UpdateCommand("")
			if explicit {
				return JumpToPage{Page: count}
			}
			return JumpToStart{}
		}
		m.pending.reset()
		viewer.UpdateCommand("")
	}

	// --- Numeric prefix ---
	if digit, ok := digitFromKey(key); ok {
		m.pending.accumulate(digit)
		viewer.UpdateCommand(m.pending.statusText())
		return nil
	}

	switch {
	// Word cursor movement
	case key.Rune == 'h' || key.Key == KeyLeft:
		return MoveCursor{Dir: DirLeft, Count: m.takeMoveCount(viewer)}
	case key.Rune == 'l' || key.Key == KeyRight:
		return MoveCursor{Dir: DirRight, Count: m.takeMoveCount(viewer)}
	case key.Rune == 'k' || key.Key == KeyUp:
		return MoveCursor{Dir: DirUp, Count: m.takeMoveCount(viewer)}
	case key.Rune == 'j' || key.Key == KeyDown:
		return MoveCursor{Dir: DirDown, Count: m.takeMoveCount(viewer)}

	// Multi-key sequences
	case key.Rune == 'g':
		m.pending.seq = 'g'
		viewer.UpdateCommand(m.pending.statusText())
		return nil
	case key.Rune == 'f':
		m.pending.seq = 'f'
		viewer.UpdateCommand(m.pending.statusText())
		return nil
	case key.Rune == 'F':
		m.pending.seq = 'F'
		viewer.UpdateCommand(m.pending.statusText())
		return nil

	case key.Rune == 'G':
		count, explicit := m.pending.takeCount()
		viewer.UpdateCommand("")
		if explicit {
			return JumpToPage{Page: count}
		}
		return JumpToEnd{}

	// Selection
	case key.Rune == 's':
		m.pending.discard(viewer)
		return ToggleSelecting{}
	case key.Rune == 'y':
		m.pending.discard(viewer)
		return CopySelection{}
	case key.Rune == 't':
		m.pending.discard(viewer)
		return TranslateSelection{}
	case key.Rune == 'd':
		m.pending.discard(viewer)
		return LookupDefinition{}

	// Zoom
	case key.Rune == '+' || key.Rune == '=':
		m.pending.discard(viewer)
		return ZoomIn{}
	case key.Rune == '-':
		m.pending.discard(viewer)
		return ZoomOut{}

	case key.Rune == 'v':
		m.pending.discard(viewer)
		return ExitVisual{}

	case key.Key == KeyEscape:
		m.pending.reset()
		viewer.UpdateCommand("")
		if viewer.GetSelection().HasAnchor() {
			return ClearSelection{}
		}
		return ExitVisual{}

	default:
		m.pending.reset()
		viewer.UpdateCommand("")
		return nil
	}
}

func (m *visualMode) takeMoveCount(viewer Viewer) int {
	viewer.UpdateCommand("")
	return m.pending.moveCount()
}
