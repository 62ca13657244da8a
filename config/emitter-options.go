package config

import (
	"github.com/zishang520/events/v2/errors"
)

type (
	WarningHandler func(*errors.Error)

	EmitterOptionsInterface interface {
		SetMaxListeners(uint)
		GetRawMaxListeners() *uint
		MaxListeners() uint

		SetOnWarning(WarningHandler)
		GetRawOnWarning() WarningHandler
		OnWarning() WarningHandler
	}

	EmitterOptions struct {
		// how many listeners an event may hold before a leak warning is raised, 0 means unlimited
		maxListeners *uint

		// receives leak warnings instead of the logger
		onWarning WarningHandler
	}
)

func DefaultEmitterOptions() *EmitterOptions {
	return &EmitterOptions{}
}

func (e *EmitterOptions) Assign(data EmitterOptionsInterface) EmitterOptionsInterface {
	if data == nil {
		return e
	}

	if e.GetRawMaxListeners() == nil && data.GetRawMaxListeners() != nil {
		e.SetMaxListeners(data.MaxListeners())
	}

	if e.GetRawOnWarning() == nil && data.GetRawOnWarning() != nil {
		e.SetOnWarning(data.OnWarning())
	}

	return e
}

// how many listeners an event may hold before a leak warning is raised, 0 means unlimited
//
// Default: 0
func (e *EmitterOptions) SetMaxListeners(maxListeners uint) {
	e.maxListeners = &maxListeners
}
func (e *EmitterOptions) GetRawMaxListeners() *uint {
	return e.maxListeners
}
func (e *EmitterOptions) MaxListeners() uint {
	if e.maxListeners == nil {
		return 0
	}

	return *e.maxListeners
}

// receives leak warnings instead of the logger
func (e *EmitterOptions) SetOnWarning(onWarning WarningHandler) {
	e.onWarning = onWarning
}
func (e *EmitterOptions) GetRawOnWarning() WarningHandler {
	return e.onWarning
}
func (e *EmitterOptions) OnWarning() WarningHandler {
	return e.onWarning
}
