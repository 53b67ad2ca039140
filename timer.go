// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

import (
	"errors"
	"time"
)

var (
	// ErrTimerRunning is returned by the scheduling methods to indicate
	// that a task is already armed on this Timer. The rejected call
	// leaves the timer exactly as it was.
	ErrTimerRunning = errors.New("a task is already scheduled on this timer")

	// ErrIntervalActive is returned by SetInterval and SetIntervalCount
	// to indicate that a previous interval's first firing has been
	// delivered and the cycle has not been fully reset. Call Reset
	// before scheduling a new interval.
	ErrIntervalActive = errors.New("the current interval cycle has not been reset")
)

const (
	// DefaultPreset is the preset duration of a Timer constructed
	// without WithPreset.
	DefaultPreset = time.Second

	// Unbounded is the repetition count of an interval with no firing
	// limit. Any negative count behaves the same way.
	Unbounded = -1
)

// Timer is a cooperative, poll-driven software timer. It has no
// internal goroutine and never blocks: the owner calls Tick on every
// iteration of its own run loop, and the timer advances purely in
// response to that poll and to its clock.
//
// A Timer can hold at most one armed task at a time, scheduled either
// as a one-shot (SetTimeout) or as a recurring interval (SetInterval),
// optionally bounded to a finite number of firings (SetIntervalCount).
// Tasks are invoked inline during Tick, so firing latency is bounded
// by the owner's loop cadence.
//
// A Timer is not safe for concurrent use. It is intended to be polled
// and mutated by a single logical thread of control; wrap it in a Loop
// if it must be shared.
type Timer struct {
	// now is the strategy used to get the current time.
	// by default, time.Now is used.
	now now

	// preset is the target duration the timer measures against.
	preset time.Duration

	// last is the clock reading at the most recent (re)start.
	last time.Time

	started bool
	done    bool

	// repeat distinguishes interval scheduling from one-shot.
	repeat bool

	// fired records that the interval's immediate first firing has
	// been delivered. It guards against reconfiguring an interval
	// mid-cycle and is cleared only by Reset.
	fired bool

	// count is the remaining scheduled firings. Negative means
	// unbounded. Zero means the firing that just happened was the
	// last one.
	count int

	task Task
}

// TimerOption is a configurable option for tailoring a Timer.
type TimerOption interface {
	apply(*Timer) error
}

type timerOptionFunc func(*Timer) error

func (f timerOptionFunc) apply(t *Timer) error { return f(t) }

// WithPreset sets the initial preset duration for the Timer. If this
// option isn't used, DefaultPreset is used. A negative duration is
// normalized to zero.
func WithPreset(d time.Duration) TimerOption {
	return timerOptionFunc(func(t *Timer) error {
		if d < 0 {
			d = 0
		}

		t.preset = d
		return nil
	})
}

// WithNow sets the strategy the Timer uses to read the current time.
// Supplying a controllable clock, such as a chronon FakeClock's Now
// method, makes the timer fully deterministic.
//
// If this option isn't used or is set to nil, time.Now is used.
func WithNow(f func() time.Time) TimerOption {
	return timerOptionFunc(func(t *Timer) error {
		if f == nil {
			f = time.Now
		}

		t.now = f
		return nil
	})
}

// NewTimer constructs an idle Timer using the supplied set of options.
// The returned Timer holds no task and is not started; schedule it
// with SetTimeout or SetInterval, or drive it manually with Set,
// Start, and Done.
func NewTimer(opts ...TimerOption) (*Timer, error) {
	t := &Timer{
		now:    time.Now,
		preset: DefaultPreset,
	}

	for _, o := range opts {
		if err := o.apply(t); err != nil {
			return nil, err
		}
	}

	// stamp the reference time so Elapsed is defined before the
	// first Start
	t.last = t.now()
	return t, nil
}

// SetTimeout arms a one-time delayed execution of a task. The preset
// duration is overwritten with the given delay, and the timer starts
// measuring immediately.
//
// If a task is already scheduled, this method does nothing and
// returns ErrTimerRunning.
func (t *Timer) SetTimeout(delay time.Duration, task Task) error {
	if t.Running() {
		return ErrTimerRunning
	}

	t.Set(delay)
	return t.SetTimeoutTask(task)
}

// SetTimeoutTask arms a one-time delayed execution of a task using
// the preset duration already configured, e.g. via Set or WithPreset.
//
// If a task is already scheduled, this method does nothing and
// returns ErrTimerRunning.
func (t *Timer) SetTimeoutTask(task Task) error {
	if t.Running() {
		return ErrTimerRunning
	}

	t.task = task
	t.repeat = false
	t.Start()
	return nil
}

// SetInterval arms a recurring execution of a task with no firing
// limit. The task fires once immediately on the next Tick, then once
// per period until Stop or Reset is called.
//
// If a task is already scheduled, this method does nothing and returns
// ErrTimerRunning. If a previous interval was stopped without being
// reset, this method returns ErrIntervalActive.
func (t *Timer) SetInterval(period time.Duration, task Task) error {
	return t.SetIntervalCount(period, Unbounded, task)
}

// SetIntervalCount arms a recurring execution of a task, bounded to a
// finite number of periodic firings. The task fires once immediately
// on the next Tick regardless of elapsed time, then count more times
// at the given period, for count+1 firings in total. A negative count
// means no limit, which is what SetInterval uses.
//
// If a task is already scheduled, this method does nothing and returns
// ErrTimerRunning. If a previous interval's first firing has been
// delivered and the timer was stopped rather than reset, this method
// returns ErrIntervalActive; call Reset first. On success all prior
// state is cleared before the new cycle is armed.
func (t *Timer) SetIntervalCount(period time.Duration, count int, task Task) error {
	if t.Running() {
		return ErrTimerRunning
	}

	if t.fired {
		return ErrIntervalActive
	}

	t.Reset()
	t.task = task
	t.Set(period)
	t.count = count
	t.repeat = true
	t.Start()
	return nil
}

// Tick advances the timer. Call this once per iteration of the owning
// run loop. Tick is the only place tasks are invoked, so execution is
// synchronous and never reentrant.
//
// An interval's first firing happens on the first Tick after
// scheduling, independent of elapsed time. After that, the task fires
// on any Tick at which the elapsed time has reached the preset
// duration: a one-shot then resets to idle, while an interval restarts
// for the next period until its repetition count is exhausted.
func (t *Timer) Tick() {
	if t.repeat && !t.fired {
		// the eager first firing of an interval. it does not consume
		// the repetition count: a bounded interval fires count+1
		// times in total.
		t.fired = true
		t.invoke()
	}

	if !t.Done() {
		return
	}

	if t.task == nil {
		return
	}

	if !t.repeat {
		t.invoke()
		t.Reset()
	} else if t.count != 0 {
		t.invoke()
		t.count--
		t.Start()
	} else {
		// the bounded interval is exhausted. Reset clears the count,
		// so restore it afterward.
		c := t.count
		t.Reset()
		t.count = c
	}
}

func (t *Timer) invoke() {
	if t.task != nil {
		t.task()
	}
}

// Start arms the timer: the reference time is stamped with the current
// clock reading and the completion state is cleared. The preset
// duration and any installed task are left untouched.
func (t *Timer) Start() {
	t.last = t.now()
	t.done = false
	t.started = true
}

// Stop disarms the timer and returns the elapsed time. If the timer
// was still running, the reference time is re-stamped first, so the
// returned elapsed time of a prematurely stopped timer is zero.
//
// Stopping an interval prevents further firings until the timer is
// reconfigured. Stopping an already stopped or idle timer is harmless.
func (t *Timer) Stop() time.Duration {
	t.done = t.Done()
	if t.Running() {
		t.last = t.now()
	}

	t.started = false
	return t.Elapsed()
}

// Reset returns the timer to its blank slate: stopped, not due, no
// task installed, repetition count zeroed, reference time re-stamped,
// and any interval cycle cleared. The preset duration is preserved.
func (t *Timer) Reset() {
	t.Stop()
	t.done = t.Done()
	t.last = t.now()
	t.count = 0
	t.task = nil
	t.repeat = false
	t.fired = false
}

// Set overwrites the preset duration. Nothing else is affected: a
// running timer keeps running against its original reference time.
// A negative duration is normalized to zero.
func (t *Timer) Set(d time.Duration) {
	if d < 0 {
		d = 0
	}

	t.preset = d
}

// Done reports whether the timer has started and its elapsed time has
// reached the preset duration.
//
// This is not a pure query: a true result is cached so that Running
// reflects the most recent completion check.
func (t *Timer) Done() bool {
	if t.started && t.Elapsed() >= t.preset {
		t.done = true
		return true
	}

	return false
}

// Running reports whether the timer has started and is not yet done.
func (t *Timer) Running() bool {
	return t.Started() && !t.Done()
}

// Elapsed returns the time elapsed since the reference time, i.e.
// since the last (re)start. It is defined regardless of whether the
// timer has started; guard with Started or Running as appropriate.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.last)
}

// Preset returns the configured preset duration.
func (t *Timer) Preset() time.Duration {
	return t.preset
}

// Started reports whether the timer is currently armed.
func (t *Timer) Started() bool {
	return t.started
}

// Remaining returns the repetition counter: the number of periodic
// firings still scheduled for a bounded interval. Negative means
// unbounded.
func (t *Timer) Remaining() int {
	return t.count
}

// State derives the scheduling state of this timer from its flags.
func (t *Timer) State() State {
	switch {
	case t.started && t.repeat:
		return StateInterval

	case t.started:
		return StateOneShot

	case t.task != nil:
		return StateStopped

	default:
		return StateIdle
	}
}
