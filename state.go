// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

//go:generate stringer -type=State -linecomment

// State describes the scheduling state of a Timer. It is derived from
// the timer's internal flags rather than stored, so it always reflects
// the most recent operation.
type State uint8

const (
	// StateIdle indicates a timer with no task armed. A timer is idle
	// after construction, after Reset, and after a one-shot or bounded
	// interval runs to completion.
	StateIdle State = iota // idle

	// StateOneShot indicates a timer armed for a single delayed firing.
	StateOneShot // one-shot

	// StateInterval indicates a timer armed for recurring firings.
	StateInterval // interval

	// StateStopped indicates a timer that still holds a task but has
	// been stopped before completing.
	StateStopped // stopped
)

// MarshalText produces the string value of this State.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
