// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrLoopStarted is returned by Loop.Start to indicate that the Loop
	// has already been started.
	ErrLoopStarted = errors.New("the loop has been started")

	// ErrLoopShutdown is returned by Loop.Shutdown to indicate that the
	// Loop has not yet been started or has already been Shutdown.
	ErrLoopShutdown = errors.New("the loop has been shutdown")
)

const (
	// DefaultPollInterval is the cadence at which a started Loop polls
	// its timers when no interval is set via WithPollInterval.
	DefaultPollInterval = 10 * time.Millisecond
)

// timerTracker holds all the information for polling a single
// registered timer.
type timerTracker struct {
	// definition is the configuration used to register this timer
	definition Definition

	// lastState is the scheduling state observed after the previous
	// poll pass. A change from this value produces a LoopEvent.
	lastState State
}

// status produces the snapshot of this tracker's timer.
func (tt *timerTracker) status() TimerStatus {
	return TimerStatus{
		Name:       tt.definition.Name,
		State:      tt.definition.Timer.State(),
		Elapsed:    tt.definition.Timer.Elapsed(),
		Remaining:  tt.definition.Timer.Remaining(),
		Attributes: tt.definition.Attributes,
	}
}

// Loop polls a fixed set of named Timers. It is the run loop the
// timers expect, packaged up: each Tick call makes one cooperative
// poll pass over every registered timer, in registration order.
//
// A Loop can be driven two ways. Embedded in an existing run loop, the
// owner simply calls Tick each iteration. Standalone, Start launches a
// background goroutine that polls on a fixed interval until Shutdown.
//
// Unlike a bare Timer, a Loop serializes all polling and queries under
// an internal lock, so its timers may be scheduled from goroutines
// other than the polling one, provided every access goes through the
// Loop or happens inside a task.
type Loop struct {
	pollInterval time.Duration

	// now is the strategy used to get the current time.
	// by default, time.Now is used.
	now now

	// newTimer is a factory for the timer channel that paces the
	// background poller. if unset, defaultNewTimer is used.
	//
	// Tests can replace this function to control background polling.
	newTimer newTimer

	listeners LoopListeners

	byName   map[Name]*timerTracker
	trackers []*timerTracker

	// lock guards poll passes and registration state
	lock sync.Mutex

	// state is the most recent snapshot of this Loop
	state atomic.Value

	// cancel is the cancellation function used to control the
	// background poller
	cancel context.CancelFunc
}

// unsafeRefreshState stores a new snapshot built from the current
// state of every registered timer.
//
// This method must be executed under the loop lock or in a situation
// where no concurrent invocation is possible.
func (l *Loop) unsafeRefreshState(lastTick time.Time) {
	statuses := make([]TimerStatus, len(l.trackers))
	for i, tt := range l.trackers {
		statuses[i] = tt.status()
	}

	l.state.Store(LoopState{
		LastTick: lastTick,
		Timers:   statuses,
	})
}

// Len returns the count of timers that are registered with this Loop.
func (l *Loop) Len() int {
	return len(l.trackers)
}

// Get returns the Timer registered under a name. If no such timer
// exists, this method returns a non-nil error.
//
// This method always returns the same Timer instance for a given name.
// The set of registered timers is immutable after construction.
func (l *Loop) Get(n Name) (*Timer, error) {
	// no locking necessary, as the set of timers is immutable
	tt := l.byName[n]
	if tt == nil {
		return nil, fmt.Errorf("No timer with the name [%s] is registered", n)
	}

	return tt.definition.Timer, nil
}

// State returns the snapshot taken at the last poll pass.
func (l *Loop) State() LoopState {
	return l.state.Load().(LoopState)
}

// Tick makes one poll pass: every registered timer is ticked in
// registration order, a LoopEvent is dispatched for each timer whose
// scheduling state changed since the previous pass, and the State
// snapshot is refreshed.
//
// Tick may be called directly from an enclosing run loop whether or
// not the background poller is running.
func (l *Loop) Tick() {
	defer l.lock.Unlock()
	l.lock.Lock()

	timestamp := l.now()
	for _, tt := range l.trackers {
		t := tt.definition.Timer
		t.Tick()

		if s := t.State(); s != tt.lastState {
			tt.lastState = s
			l.listeners.OnLoopEvent(LoopEvent{
				Name:       tt.definition.Name,
				State:      s,
				Elapsed:    t.Elapsed(),
				Timestamp:  timestamp,
				Attributes: tt.definition.Attributes,
			})
		}
	}

	l.unsafeRefreshState(timestamp)
}

// poll drives Tick on the configured interval until the context
// is canceled.
func (l *Loop) poll(ctx context.Context) {
	for {
		timeCh, stop := l.newTimer(l.pollInterval)
		select {
		case <-ctx.Done():
			stop()
			return

		case <-timeCh:
			l.Tick()
		}
	}
}

// Start launches the background poller, which calls Tick on the
// configured poll interval. A Loop that is embedded in an existing
// run loop does not need to be started.
//
// This method is idempotent. If this Loop has already been started,
// this method does nothing and returns ErrLoopStarted.
func (l *Loop) Start() error {
	defer l.lock.Unlock()
	l.lock.Lock()

	if l.cancel != nil {
		return ErrLoopStarted
	}

	var rootCtx context.Context
	rootCtx, l.cancel = context.WithCancel(context.Background())
	go l.poll(rootCtx)
	return nil
}

// Shutdown stops the background poller. The registered timers are left
// exactly as they are; a subsequent Start, or direct Tick calls, will
// resume them.
//
// This method is idempotent. If this Loop is not running,
// this method does nothing and returns ErrLoopShutdown.
func (l *Loop) Shutdown() error {
	defer l.lock.Unlock()
	l.lock.Lock()

	if l.cancel == nil {
		return ErrLoopShutdown
	}

	l.cancel()
	l.cancel = nil
	return nil
}

// LoopOption is a configurable option for tailoring a Loop.
type LoopOption interface {
	apply(*Loop) error
}

type loopOptionFunc func(*Loop) error

func (f loopOptionFunc) apply(l *Loop) error { return f(l) }

// WithPollInterval sets the cadence of the background poller started
// by Start. If unset or nonpositive, the Loop uses
// DefaultPollInterval. The interval is irrelevant when the Loop is
// ticked manually.
func WithPollInterval(i time.Duration) LoopOption {
	return loopOptionFunc(func(l *Loop) error {
		if i <= 0 {
			i = DefaultPollInterval
		}

		l.pollInterval = i
		return nil
	})
}

// WithTimers registers several timers with the Loop. A Definition with
// a nil Timer gets a fresh idle Timer, which can be scheduled later
// via Get.
func WithTimers(defs ...Definition) LoopOption {
	return loopOptionFunc(func(l *Loop) error {
		for _, d := range defs {
			if l.byName[d.Name] != nil {
				return fmt.Errorf("A timer with the name [%s] already exists", d.Name)
			}

			if d.Timer == nil {
				t, err := NewTimer()
				if err != nil {
					return err
				}

				d.Timer = t
			}

			d.Attributes = d.Attributes.Clone()
			tt := &timerTracker{
				definition: d,
				lastState:  d.Timer.State(),
			}

			l.byName[d.Name] = tt
			l.trackers = append(l.trackers, tt)
		}

		return nil
	})
}

// WithListeners adds listeners that receive a LoopEvent whenever a
// registered timer's scheduling state changes.
func WithListeners(ls ...LoopListener) LoopOption {
	return loopOptionFunc(func(l *Loop) error {
		l.listeners = append(l.listeners, ls...)
		return nil
	})
}

// NewLoop constructs a Loop using the supplied set of options. The
// returned Loop is not running: either call Tick from an existing run
// loop or call Start to launch the background poller.
//
// The set of registered timers is fixed and immutable after
// construction.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	l := &Loop{
		byName:       make(map[Name]*timerTracker),
		pollInterval: DefaultPollInterval,
		now:          time.Now,
		newTimer:     defaultNewTimer,
	}

	for _, o := range opts {
		if err := o.apply(l); err != nil {
			return nil, err
		}
	}

	l.unsafeRefreshState(l.now())
	return l, nil
}
