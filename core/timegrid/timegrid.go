// Package timegrid converts slot indices into clock times. The scheduling day
// starts at 08:00 and is divided into 30-minute slots; the number of slots per
// day comes from the constraint set.
package timegrid

import "fmt"

const (
	// DayStartHour is the clock hour of slot 0.
	DayStartHour = 8
	// SlotMinutes is the length of one slot.
	SlotMinutes = 30
)

// Clock returns the HH:MM string for the start of the given zero-based slot
// index within a day. No bounds checking is performed: an index at or past the
// end of the day still yields a time string, and callers range-check
// separately.
func Clock(slot int) string {
	minutes := DayStartHour*60 + slot*SlotMinutes
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
