// Package renderer projects ledger state into markdown strings.
//
// Everything here is a pure projection: functions take ledger values and
// return text. Printing to the terminal is the caller's concern, so the
// whole package is unit-testable without a rendering environment.
package renderer

import "time"

// timeFormat is the display format for transaction creation instants.
const timeFormat = "2006-01-02 15:04"

func formatTime(t time.Time) string {
	return t.Format(timeFormat)
}
