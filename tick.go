// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

// Ticker is anything that advances in response to a cooperative poll.
// Both Timer and Loop are Tickers, which lets a Loop be driven from an
// enclosing run loop just like a single timer.
type Ticker interface {
	// Tick advances the receiver. A Timer requires all Tick calls to
	// come from a single goroutine; a Loop serializes them itself.
	Tick()
}

var (
	_ Ticker = (*Timer)(nil)
	_ Ticker = (*Loop)(nil)
)
