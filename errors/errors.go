package errors

import (
	"fmt"
)

const (
	// MaxListenersExceededWarning is the type of the warning raised when an event
	// holds more listeners than the emitter's limit.
	MaxListenersExceededWarning = "MaxListenersExceededWarning"
)

type Error struct {
	Message     string
	Type        string
	Description string
}

func New(message string) *Error {
	return &Error{Message: message}
}

// NewMaxListenersExceeded describes a possible listener leak on the event.
func NewMaxListenersExceeded(event fmt.Stringer, count int, max uint) *Error {
	return &Error{
		Message:     fmt.Sprintf("Possible EventEmitter memory leak detected. %d %s listeners added. Use emitter.SetMaxListeners() to increase limit", count, event),
		Type:        MaxListenersExceededWarning,
		Description: fmt.Sprintf("limit is %d", max),
	}
}

func (e *Error) Err() error {
	return e
}

func (e *Error) Error() string {
	if e.Type != "" {
		return e.Type + ": " + e.Message
	}
	return e.Message
}
