package core

import "strconv"

type Mode string

const (
	NormalMode Mode = "normal"
	VisualMode Mode = "visual"
)

// ViewerMode represents a Vim-style input mode.
type ViewerMode interface {
	Name() Mode
	// HandleKey processes a key press and returns the resulting Command,
	// or nil when the key only changed pending input state (or was not
	// recognized). The returned Command is applied by the viewer's
	// dispatcher.
	HandleKey(viewer Viewer, key KeyEvent) Command
	Enter(viewer Viewer) // Called when entering the mode
	Exit(viewer Viewer)  // Called when exiting the mode
}

const maxPendingCount = 1_000_000_000

// pendingInput tracks the numeric prefix and an armed multi-key sequence
// ('g', 'f' or 'F'). Both modes embed one; invalid sequences reset it so
// stale state never carries into the next key.
type pendingInput struct {
	count *int
	seq   rune
}

// accumulate appends a digit to the numeric prefix.
func (p *pendingInput) accumulate(digit int) {
	if p.count == nil {
		p.count = new(int)
		*p.count = digit
		return
	}
	next := *p.count*10 + digit
	if next > maxPendingCount { // keep the old value on overflow
		return
	}
	*p.count = next
}

// takeCount consumes the numeric prefix. It returns the accumulated value
// and whether a prefix was typed at all.
func (p *pendingInput) takeCount() (count int, explicit bool) {
	if p.count == nil {
		return 0, false
	}
	count = *p.count
	p.count = nil
	return count, true
}

// moveCount consumes the prefix as a repeat count, defaulting to 1.
// An explicit 0 also means 1; a zero repeat would be surprising.
func (p *pendingInput) moveCount() int {
	count, explicit := p.takeCount()
	if !explicit || count < 1 {
		return 1
	}
	return count
}

func (p *pendingInput) reset() {
	p.count = nil
	p.seq = 0
}

// discard drops the pending input and clears the command display. Every
// branch that dispatches a command without consuming the prefix as a
// count goes through here, so a stale prefix never multiplies the next
// movement.
func (p *pendingInput) discard(viewer Viewer) {
	p.reset()
	viewer.UpdateCommand("")
}

// statusText renders the pending input for the status bar, e.g. "42g".
func (p *pendingInput) statusText() string {
	var out string
	if p.count != nil {
		out = strconv.Itoa(*p.count)
	}
	if p.seq != 0 {
		out += string(p.seq)
	}
	return out
}

// digitFromKey returns the digit for a '0'-'9' key press.
func digitFromKey(key KeyEvent) (int, bool) {
	if key.Rune >= '0' && key.Rune <= '9' {
		return int(key.Rune - '0'), true
	}
	return 0, false
}
