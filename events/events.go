// Package events provides a synchronous EventEmitter for in-process publish/subscribe.
package events

import (
	"maps"
	"slices"
	"sync"

	"github.com/zishang520/events/v2/config"
	"github.com/zishang520/events/v2/errors"
	"github.com/zishang520/events/v2/log"
)

const (
	// DefaultMaxListeners is the number of max listeners per event
	// default EventEmitters will print a warning if more than x listeners are
	// added to it. This is a useful default which helps finding memory leaks.
	// Defaults to 0, which means unlimited
	DefaultMaxListeners = 0
)

var emitter_log = log.NewLog("events:emitter")

type (
	// Events the type for registered listeners, it's just a map[EventName][]func(...any)
	Events map[EventName][]Listener

	// EventEmitter is the message/or/event manager.
	//
	// Listeners run on the goroutine that calls Emit. The emitter never holds its
	// lock while a listener runs, so listeners may register, remove and emit
	// freely. Operations are individually atomic, but callers that emit from
	// several goroutines must order those emissions themselves.
	EventEmitter interface {
		// AddListener appends the listeners to the end of the sequence for evt.
		// The same listener may be added more than once.
		AddListener(evt Key, listeners ...Listener) EventEmitter
		// On is an alias for AddListener.
		On(evt Key, listeners ...Listener) EventEmitter
		// PrependListener inserts the listeners at the front of the sequence for evt.
		PrependListener(evt Key, listeners ...Listener) EventEmitter
		// Once adds a one time listener for evt and returns its wrapper.
		// The next time evt is emitted the wrapper is removed and then the listener invoked.
		// Passing the wrapper to RemoveListener cancels the registration.
		Once(evt Key, listener Listener) Listener
		// PrependOnceListener is Once, inserting the wrapper at the front.
		PrependOnceListener(evt Key, listener Listener) Listener
		// Emit synchronously calls each of the listeners registered for evt, in the
		// order they were registered, passing the supplied arguments to each.
		// The listeners are those registered when Emit starts. It reports whether
		// there were any. A panicking listener aborts the emission.
		Emit(evt Key, args ...any) bool
		// EventNames returns the events that have listeners, in the order they were
		// first registered.
		EventNames() []Key
		// GetMaxListeners returns the max listeners for this emitter
		// see SetMaxListeners
		GetMaxListeners() uint
		// SetMaxListeners sets the number of listeners per event above which a leak
		// warning is raised. Set to zero for unlimited.
		SetMaxListeners(n uint)
		// ListenerCount returns the number of listeners registered for evt.
		ListenerCount(evt Key) int
		// Listeners returns a copy of the listeners for evt. One time listeners are
		// returned as their wrappers.
		Listeners(evt Key) []Listener
		// RemoveListener removes every occurrence of listener from evt.
		RemoveListener(evt Key, listener Listener) EventEmitter
		// Off is an alias for RemoveListener.
		Off(evt Key, listener Listener) EventEmitter
		// RemoveAllListeners removes the listeners of the given events, or of every
		// event when none is given.
		RemoveAllListeners(evts ...Key) EventEmitter
		// Clear removes all events and all listeners.
		Clear()
		// Len returns the number of events that have listeners.
		Len() int
	}

	emitter struct {
		mu           sync.RWMutex
		maxListeners uint
		onWarning    config.WarningHandler
		evtListeners map[Key][]*listener
		order        []Key
		warned       map[Key]bool
	}
)

// CopyTo registers the listeners with the emitter, events in name order.
func (e Events) CopyTo(emitter EventEmitter) {
	for _, evt := range slices.Sorted(maps.Keys(e)) {
		if listeners := e[evt]; len(listeners) > 0 {
			emitter.AddListener(evt, listeners...)
		}
	}
}

// New returns a new, empty, EventEmitter.
func New(opts ...config.EmitterOptionsInterface) EventEmitter {
	options := config.DefaultEmitterOptions()
	for _, opt := range opts {
		options.Assign(opt)
	}

	return &emitter{
		maxListeners: options.MaxListeners(),
		onWarning:    options.OnWarning(),
		evtListeners: map[Key][]*listener{},
		warned:       map[Key]bool{},
	}
}

func (e *emitter) SetMaxListeners(n uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.maxListeners = n
}

func (e *emitter) GetMaxListeners() uint {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.maxListeners
}

func (e *emitter) addListeners(evt Key, listeners []*listener, prepend bool) {
	if len(listeners) == 0 {
		return
	}

	e.mu.Lock()

	evts, ok := e.evtListeners[evt]
	if !ok {
		e.order = append(e.order, evt)
	}

	if prepend {
		evts = append(append(make([]*listener, 0, len(listeners)+len(evts)), listeners...), evts...)
	} else {
		evts = append(evts, listeners...)
	}
	e.evtListeners[evt] = evts

	var warning *errors.Error
	if e.maxListeners > 0 && uint(len(evts)) > e.maxListeners && !e.warned[evt] {
		e.warned[evt] = true
		warning = errors.NewMaxListenersExceeded(evt, len(evts), e.maxListeners)
	}
	onWarning := e.onWarning

	e.mu.Unlock()

	emitter_log.Debug("added %d listener(s) to %v", len(listeners), evt)

	if warning != nil {
		if onWarning != nil {
			onWarning(warning)
		} else {
			emitter_log.Warning("%s", warning.Error())
		}
	}
}

func wrap(listeners []Listener) []*listener {
	events := make([]*listener, 0, len(listeners))
	for _, fn := range listeners {
		if fn != nil {
			events = append(events, newListener(fn))
		}
	}
	return events
}

func (e *emitter) AddListener(evt Key, listeners ...Listener) EventEmitter {
	e.addListeners(evt, wrap(listeners), false)
	return e
}

// Alias: [AddListener]
func (e *emitter) On(evt Key, listeners ...Listener) EventEmitter {
	return e.AddListener(evt, listeners...)
}

func (e *emitter) PrependListener(evt Key, listeners ...Listener) EventEmitter {
	e.addListeners(evt, wrap(listeners), true)
	return e
}

func (e *emitter) once(evt Key, fn Listener, prepend bool) Listener {
	if fn == nil {
		return nil
	}

	oneTime := newOneTimeListener(e, evt, fn)
	e.addListeners(evt, []*listener{newListener(oneTime.wrapper)}, prepend)
	return oneTime.wrapper
}

func (e *emitter) Once(evt Key, listener Listener) Listener {
	return e.once(evt, listener, false)
}

func (e *emitter) PrependOnceListener(evt Key, listener Listener) Listener {
	return e.once(evt, listener, true)
}

func (e *emitter) Emit(evt Key, args ...any) bool {
	e.mu.RLock()
	evts := e.evtListeners[evt]
	if len(evts) == 0 {
		e.mu.RUnlock()
		return false
	}

	listeners := make([]*listener, len(evts))
	copy(listeners, evts)
	e.mu.RUnlock()

	emitter_log.Debug("emitting %v to %d listener(s)", evt, len(listeners))

	for _, l := range listeners {
		l.fn(args...)
	}
	return true
}

func (e *emitter) EventNames() []Key {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return slices.Clone(e.order)
}

func (e *emitter) ListenerCount(evt Key) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.evtListeners[evt])
}

func (e *emitter) Listeners(evt Key) []Listener {
	e.mu.RLock()
	defer e.mu.RUnlock()

	evts := e.evtListeners[evt]
	listeners := make([]Listener, len(evts))
	for i, l := range evts {
		listeners[i] = l.fn
	}
	return listeners
}

// deleteEvent must be called with the lock held.
func (e *emitter) deleteEvent(evt Key) bool {
	if _, ok := e.evtListeners[evt]; !ok {
		return false
	}

	delete(e.evtListeners, evt)
	delete(e.warned, evt)
	if i := slices.Index(e.order, evt); i >= 0 {
		e.order = slices.Delete(e.order, i, i+1)
	}
	return true
}

// RemoveListener removes the specified listener from the listener array for the event named eventName.
func (e *emitter) RemoveListener(evt Key, listener Listener) EventEmitter {
	if listener == nil {
		return e
	}

	target := identity(listener)

	e.mu.Lock()
	defer e.mu.Unlock()

	evts, ok := e.evtListeners[evt]
	if !ok {
		return e
	}

	kept := evts[:0]
	for _, l := range evts {
		if l.ptr != target {
			kept = append(kept, l)
		}
	}
	if removed := len(evts) - len(kept); removed > 0 {
		clear(evts[len(kept):])
		emitter_log.Debug("removed %d listener(s) from %v", removed, evt)
	}

	if len(kept) == 0 {
		e.deleteEvent(evt)
	} else {
		e.evtListeners[evt] = kept
	}
	return e
}

// Alias: [RemoveListener]
func (e *emitter) Off(evt Key, listener Listener) EventEmitter {
	return e.RemoveListener(evt, listener)
}

func (e *emitter) RemoveAllListeners(evts ...Key) EventEmitter {
	if len(evts) == 0 {
		e.Clear()
		return e
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, evt := range evts {
		if e.deleteEvent(evt) {
			emitter_log.Debug("removed all listeners from %v", evt)
		}
	}
	return e
}

func (e *emitter) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.evtListeners = map[Key][]*listener{}
	e.warned = map[Key]bool{}
	e.order = nil

	emitter_log.Debug("cleared all events")
}

func (e *emitter) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.evtListeners)
}
