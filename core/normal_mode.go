package core

type normalMode struct {
	pending pendingInput
}

func newNormalMode() ViewerMode {
	return &normalMode{}
}

func (m *normalMode) Name() Mode { return NormalMode }

func (m *normalMode) Enter(viewer Viewer) {
	viewer.UpdateStatus("-- NORMAL --")
	viewer.UpdateCommand("")
	m.pending.reset()
}

func (m *normalMode) Exit(viewer Viewer) {
	m.pending.reset()
}

func (m *normalMode) HandleKey(viewer Viewer, key KeyEvent) Command {
	// --- Ctrl combinations ---
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
		// Malformed sequence: abort it and handle the key as a fresh one
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
	case key.Rune == 'g':
		// First half of gg; the count, if any, stays pending
		m.pending.seq = 'g'
		viewer.UpdateCommand(m.pending.statusText())
		return nil

	case key.Rune == 'G':
		count, explicit := m.pending.takeCount()
		viewer.UpdateCommand("")
		if explicit {
			return JumpToPage{Page: count}
		}
		return JumpToEnd{}

	// Movement keys
	case key.Rune == 'h' || key.Key == KeyLeft:
		return ScrollHorizontal{Steps: -m.takeMoveCount(viewer)}
	case key.Rune == 'l' || key.Key == KeyRight:
		return ScrollHorizontal{Steps: m.takeMoveCount(viewer)}
	case key.Rune == 'k' || key.Key == KeyUp:
		return ScrollVertical{Steps: -m.takeMoveCount(viewer)}
	case key.Rune == 'j' || key.Key == KeyDown:
		return ScrollVertical{Steps: m.takeMoveCount(viewer)}
	case key.Key == KeyPageUp:
		m.pending.discard(viewer)
		return ScrollHalfPage{Dir: ScrollUp}
	case key.Key == KeyPageDown:
		m.pending.discard(viewer)
		return ScrollHalfPage{Dir: ScrollDown}

	// Zoom
	case key.Rune == '+' || key.Rune == '=':
		m.pending.discard(viewer)
		return ZoomIn{}
	case key.Rune == '-':
		m.pending.discard(viewer)
		return ZoomOut{}

	// Mode changes
	case key.Rune == 'v':
		m.pending.discard(viewer)
		return EnterVisual{}

	case key.Key == KeyEscape:
		m.pending.reset()
		viewer.UpdateCommand("")
		return nil

	default:
		// Unrecognized key with pending input clears the prefix
		m.pending.reset()
		viewer.UpdateCommand("")
		return nil
	}
}

// takeMoveCount consumes the pending prefix as a repeat count and clears
// the command display.
func (m *normalMode) takeMoveCount(viewer Viewer) int {
	viewer.UpdateCommand("")
	return m.pending.moveCount()
}
