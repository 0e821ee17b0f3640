// Package time contains time related helpers shared by repos and services
package time

import "time"

// Ptr returns a pointer to t, or nil if t is zero.
// Handy for nullable timestamp columns
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
