package events

import (
	"fmt"
)

type (
	// Key identifies an event. It is implemented by EventName and *Symbol only,
	// so a single registry can mix both kinds while keeping one insertion order.
	Key interface {
		fmt.Stringer

		eventKey()
	}

	// EventName is a text event key, compared by value.
	EventName string

	// Symbol is an opaque event key, compared by identity. Two symbols created
	// with the same description are different keys.
	Symbol struct {
		description string
	}
)

func (e EventName) String() string {
	return string(e)
}

func (EventName) eventKey() {}

// NewSymbol returns a new unique event key. The description is only used for
// display.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

func (s *Symbol) Description() string {
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

func (*Symbol) eventKey() {}
