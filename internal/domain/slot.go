package domain

import (
	"fmt"

	"github.com/playgrid/turf-booking-service/pkg/types"
)

// Slot represents a bookable time interval within the operating window.
// Slots are generated per request and never persisted
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Display   string // human-readable 12-hour rendering, e.g. "06:00 AM - 07:00 AM"
	Available bool
}

// FormatSlotDisplay renders a slot interval in 12-hour clock notation.
// Falls back to the raw 24-hour values if a bound cannot be parsed
func FormatSlotDisplay(start, end types.TimeString) string {
	s, errS := start.Format12Hour()
	e, errE := end.Format12Hour()
	if errS != nil || errE != nil {
		return fmt.Sprintf("%s - %s", start, end)
	}
	return fmt.Sprintf("%s - %s", s, e)
}
