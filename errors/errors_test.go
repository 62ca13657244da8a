package errors

import (
	"strings"
	"testing"
)

type name string

func (n name) String() string { return string(n) }

func TestError(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		if msg := New("boom").Error(); msg != "boom" {
			t.Fatalf(`New("boom").Error() = %q, want match for %q`, msg, "boom")
		}
	})

	t.Run("maxListeners", func(t *testing.T) {
		err := NewMaxListenersExceeded(name("message"), 3, 2)
		if err.Type != MaxListenersExceededWarning {
			t.Fatalf(`Error.Type = %q, want match for %q`, err.Type, MaxListenersExceededWarning)
		}
		if msg := err.Err().Error(); !strings.HasPrefix(msg, MaxListenersExceededWarning+": ") || !strings.Contains(msg, "3 message listeners") {
			t.Fatalf(`Error.Error() = %q, unexpected message`, msg)
		}
		if err.Description != "limit is 2" {
			t.Fatalf(`Error.Description = %q, want match for %q`, err.Description, "limit is 2")
		}
	})
}
