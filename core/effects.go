package core

import "log"

// Effect is a data value describing a side effect to be performed by an
// external collaborator. The core emits effects but never executes them:
// clipboard, translation and dictionary access all live outside.
type Effect any

// CopyToClipboardEffect asks the clipboard collaborator to store text.
type CopyToClipboardEffect struct {
	text string
}

func (e CopyToClipboardEffect) Value() string {
	return e.text
}

// TranslationRequestEffect asks the translation collaborator to translate text.
type TranslationRequestEffect struct {
	text string
}

func (e TranslationRequestEffect) Value() string {
	return e.text
}

// DefinitionRequestEffect asks the dictionary collaborator to define a word.
type DefinitionRequestEffect struct {
	word string
}

func (e DefinitionRequestEffect) Value() string {
	return e.word
}

// ModeChangedEffect reports a mode transition.
type ModeChangedEffect struct {
	mode Mode
}

func (e ModeChangedEffect) Value() Mode {
	return e.mode
}

// CursorMovedEffect reports the word now under the visual cursor.
type CursorMovedEffect struct {
	word Word
}

func (e CursorMovedEffect) Value() Word {
	return e.word
}

// PageChangedEffect reports a jump to a new page.
type PageChangedEffect struct {
	page int
}

func (e PageChangedEffect) Value() int {
	return e.page
}

func (s *session) DispatchEffect(effect Effect) {
	select {
	case s.effects <- effect:
	default:
		log.Println("Channel is full, unable to send effect")
	}
}
