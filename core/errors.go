package core

import "errors"

var (
	ErrStartOfPage     = errors.New("start of page")
	ErrEndOfPage       = errors.New("end of page")
	ErrNoWords         = errors.New("no words on page")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidMode     = errors.New("invalid mode")
)

// ErrorId identifies a failure reported to the embedding program, so it
// can react without matching message text.
type ErrorId int

const (
	ErrCopyFailedId ErrorId = iota
)

// Error pairs a failure with its id for collaborators outside core.
type Error struct {
	id  ErrorId
	err error
}

func NewError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) Id() ErrorId {
	return e.id
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}
