// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

import "reflect"

// Task is a callback invoked by a Timer when it comes due. A Task is
// borrowed: the timer passes nothing to it, expects nothing back, and
// drops its reference when the schedule completes or is reset. The
// caller must ensure whatever the Task touches remains valid while
// it is armed.
//
// Tasks are invoked inline during Tick, on the polling goroutine's own
// stack. A Task must be fast and must not block, since the entire run
// loop waits on it.
type Task func()

// Errorer is a callback that receives errors reported by closures
// converted via AsTask. By default, such errors are dropped.
type Errorer func(error)

// TaskFunc describes the closure types that are convertible to Tasks.
// Calling code can convert any closure that satisfies this type via AsTask.
type TaskFunc interface {
	~func() | ~func() error
}

var (
	taskNoResult    = reflect.TypeOf((func())(nil))
	taskReturnError = reflect.TypeOf((func() error)(nil))
)

// AsTask converts a closure into a Task. This allows client code to
// schedule simpler closures that have no dependency on this package.
//
// For closures that return an error, any non-nil error is handed to
// the given Errorer. A nil Errorer drops the errors. The Errorer is
// ignored for closures that return nothing.
func AsTask[F TaskFunc](f F, errorer Errorer) Task {
	fv := reflect.ValueOf(f)
	switch {
	case fv.CanConvert(taskNoResult):
		return fv.Convert(taskNoResult).Interface().(func())

	default: // this is the error-returning form
		tf := fv.Convert(taskReturnError).Interface().(func() error)
		return func() {
			if err := tf(); err != nil && errorer != nil {
				errorer(err)
			}
		}
	}
}
