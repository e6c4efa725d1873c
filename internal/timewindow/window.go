// Package timewindow computes the query windows and timestamp formats the
// venue API expects. Two distinct conventions are in play and must not be
// unified: the windowed booking listing and the event log take naive local
// timestamps with no zone suffix, while the new-booking trigger attaches an
// explicit fixed EDT offset. The upstream has only been observed accepting
// each format on its respective endpoint.
package timewindow

import "time"

// EDT is the fixed UTC-4 offset the identity service and trigger endpoints
// are pinned to.
var EDT = time.FixedZone("EDT", -4*60*60)

const (
	naiveLayout  = "2006-01-02T15:04:05"
	offsetLayout = "2006-01-02T15:04:05.000-07:00"
)

// Naive renders t as a local timestamp with no zone suffix.
func Naive(t time.Time) string {
	return t.Format(naiveLayout)
}

// Offset renders t in EDT with an explicit -04:00 suffix.
func Offset(t time.Time) string {
	return t.In(EDT).Format(offsetLayout)
}

// LoginTimestamp is the ISO-8601 EDT instant included in the credential
// exchange.
func LoginTimestamp(now time.Time) string {
	return Offset(now)
}

// BookingWindow is the bounded range scanned when locating a booking by id:
// start of the previous day through 90 days later at end of day, in the
// naive local convention.
func BookingWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.AddDate(0, 0, -1).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 90)
	ey, em, ed := end.Date()
	end = time.Date(ey, em, ed, 23, 59, 59, 999_000_000, now.Location())
	return start, end
}

// TriggerWindow is the forward-looking range polled by the new-booking
// trigger: one minute from now through 90 days out, in the EDT offset
// convention.
func TriggerWindow(now time.Time) (start, end time.Time) {
	start = now.Add(time.Minute)
	end = now.Add(90 * 24 * time.Hour)
	return start, end
}

// EventPollStart is the lower bound of the activity poll, 24 hours back.
func EventPollStart(now time.Time) time.Time {
	return now.Add(-24 * time.Hour)
}
