// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

import "time"

// Name is the human-readable identifier for a timer within a Loop.
// Names must be unique within a Loop.
type Name string

// Attributes are a set of name/value pairs associated with a timer in
// a Loop. Attributes are not used by the Loop itself and can provide
// extra information about the timer for reporting.
type Attributes map[string]any

// Clone creates a shallow copy of this Attributes. Individual values
// are transferred as is to the clone. If this Attributes is empty,
// a nil Attributes is returned by this method.
func (a Attributes) Clone() Attributes {
	if len(a) == 0 {
		return nil
	}

	clone := make(Attributes, len(a))
	for k, v := range a {
		clone[k] = v
	}

	return clone
}

// Definition holds the information necessary to register a timer
// with a Loop.
type Definition struct {
	// Name is the unique identifier for this timer within the Loop.
	Name Name

	// Timer is the timer to poll. If nil, the Loop creates an idle
	// Timer, which can be retrieved via Get and scheduled at any time.
	Timer *Timer

	// Attributes are optional name/value pairs to associate with this
	// timer. The Loop does not modify this field, but does make a
	// shallow copy for its internal storage.
	Attributes Attributes
}

// TimerStatus is a snapshot of the current state of a single timer
// registered with a Loop.
type TimerStatus struct {
	// Name is the unique identifier for this timer.
	Name Name `json:"name"`

	// State is the timer's scheduling state as of the snapshot.
	State State `json:"state"`

	// Elapsed is the timer's elapsed time as of the snapshot.
	Elapsed time.Duration `json:"elapsed"`

	// Remaining is the timer's repetition counter as of the snapshot.
	// Negative means unbounded.
	Remaining int `json:"remaining"`

	// Attributes is the optional set of name/value pairs that were
	// supplied when the timer was registered.
	Attributes Attributes `json:"attributes,omitempty"`
}

// LoopState holds a snapshot of the state of a Loop.
type LoopState struct {
	// LastTick is the timestamp of the loop's most recent poll pass.
	// Before the first Tick, this is the construction time.
	LastTick time.Time `json:"lastTick"`

	// Timers is a snapshot of each registered timer, in registration
	// order.
	Timers []TimerStatus `json:"timers"`
}
