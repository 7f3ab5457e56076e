// Package testutil holds helpers shared by the package tests.
package testutil

import "time"

// StepClock returns a clock that reports start on its first call and advances
// by step on every call after that.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}
