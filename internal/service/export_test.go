package service

import "time"

// SetTimeNow pins the clock for tests and returns a restore func.
func SetTimeNow(f func() time.Time) func() {
	old := timeNow
	timeNow = f
	return func() { timeNow = old }
}
