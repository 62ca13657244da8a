package events

import (
	"sync/atomic"
	"unsafe"
)

type (
	// Listener is the type of a Listener, it's a func which receives any,optional, arguments from the caller/emmiter
	Listener func(...any)

	listener struct {
		fn  Listener
		ptr unsafe.Pointer
	}
)

// identity returns the closure pointer of fn. A top-level function has the
// same identity wherever it is referenced; every evaluation of a capturing
// func literal or a method value produces a new one.
func identity(fn Listener) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&fn))
}

func newListener(fn Listener) *listener {
	return &listener{fn: fn, ptr: identity(fn)}
}

type oneTimeListener struct {
	fired atomic.Bool

	evt     Key
	emitter *emitter
	fn      Listener
	wrapper Listener
}

func newOneTimeListener(e *emitter, evt Key, fn Listener) *oneTimeListener {
	l := &oneTimeListener{evt: evt, emitter: e, fn: fn}
	l.wrapper = l.execute
	return l
}

// execute removes the wrapper before calling fn, so an emission started by fn
// does not see it. Emissions that snapshotted the wrapper earlier skip it.
func (l *oneTimeListener) execute(args ...any) {
	if !l.fired.CompareAndSwap(false, true) {
		return
	}

	l.emitter.RemoveListener(l.evt, l.wrapper)
	l.fn(args...)
}
