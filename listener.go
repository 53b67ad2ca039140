// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

import "time"

// LoopEvent indicates that a registered timer's scheduling state
// changed, observed during a Loop poll pass. One event is dispatched
// per changed timer per pass: scheduling shows up as a transition into
// StateOneShot or StateInterval, completion as a transition into
// StateIdle, and a manual Stop as a transition into StateStopped.
type LoopEvent struct {
	// Name is the identifier of the timer whose state changed.
	Name Name

	// State is the timer's new scheduling state.
	State State

	// Elapsed is the timer's elapsed time when the change was observed.
	Elapsed time.Duration

	// Timestamp is the time of the poll pass that observed the change.
	Timestamp time.Time

	// Attributes is the optional set of name/value pairs that were
	// supplied when the timer was registered.
	Attributes Attributes
}

// LoopListener is a sink for LoopEvents.
type LoopListener interface {
	// OnLoopEvent receives a LoopEvent. This method must not panic or
	// block, as it executes inline during the poll pass. Additionally,
	// it must not invoke any Loop methods, since event dispatch runs
	// under the Loop's internal lock.
	OnLoopEvent(LoopEvent)
}

// LoopListeners is an aggregate LoopListener.
type LoopListeners []LoopListener

// OnLoopEvent dispatches the given event to each listener
// in this aggregate.
func (lls LoopListeners) OnLoopEvent(e LoopEvent) {
	for _, l := range lls {
		l.OnLoopEvent(e)
	}
}
