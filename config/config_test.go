package config

import (
	"testing"

	"github.com/zishang520/events/v2/errors"
)

func TestEmitterOptionsDefauleValue(t *testing.T) {
	opts := DefaultEmitterOptions()

	t.Run("maxListeners", func(t *testing.T) {
		if maxListeners := opts.MaxListeners(); opts.maxListeners == nil && maxListeners != 0 {
			t.Fatalf(`EmitterOptions.MaxListeners() = %d, want match for %d`, maxListeners, 0)
		}
	})

	t.Run("onWarning", func(t *testing.T) {
		if onWarning := opts.OnWarning(); opts.onWarning == nil && onWarning != nil {
			t.Fatal(`EmitterOptions.OnWarning() = func, want match for nil`)
		}
	})
}

func TestEmitterOptionsAssign(t *testing.T) {
	var got *errors.Error

	base := DefaultEmitterOptions()
	base.SetMaxListeners(10)
	base.SetOnWarning(func(err *errors.Error) { got = err })

	t.Run("fillsUnset", func(t *testing.T) {
		opts := DefaultEmitterOptions()
		opts.Assign(base)
		if n := opts.MaxListeners(); n != 10 {
			t.Fatalf(`EmitterOptions.MaxListeners() = %d, want match for %d`, n, 10)
		}
		if opts.OnWarning() == nil {
			t.Fatal(`EmitterOptions.OnWarning() = nil, want the assigned handler`)
		}
		opts.OnWarning()(errors.New("leak"))
		if got == nil || got.Message != "leak" {
			t.Fatalf(`assigned OnWarning received %v, want match for "leak"`, got)
		}
	})

	t.Run("keepsSet", func(t *testing.T) {
		opts := DefaultEmitterOptions()
		opts.SetMaxListeners(2)
		opts.Assign(base)
		if n := opts.MaxListeners(); n != 2 {
			t.Fatalf(`EmitterOptions.MaxListeners() = %d, want match for %d`, n, 2)
		}
	})

	t.Run("nil", func(t *testing.T) {
		opts := DefaultEmitterOptions()
		if opts.Assign(nil) != opts {
			t.Fatal(`EmitterOptions.Assign(nil) should return the receiver`)
		}
	})
}
