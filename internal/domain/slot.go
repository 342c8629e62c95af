package domain

import (
	"fmt"
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/pkg/types"
)

// TimeSlot represents a fixed-duration bookable time window on a given date.
// Identity is derived from the date and start time, not stored: regenerating
// slots from the same settings and date range reproduces the same ids.
// Booked fields are set exactly once and never cleared.
type TimeSlot struct {
	ID        string
	Date      string // YYYY-MM-DD
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBooked  bool
	BookedBy  *string
	BookedAt  *time.Time
}

// SlotID computes the deterministic slot identifier for a date and start time.
func SlotID(date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%s-%s", date.Format(DateFormat), start)
}

// StartDateTime returns the slot start as a time.Time in the given location.
func (s *TimeSlot) StartDateTime(loc *time.Location) (time.Time, error) {
	return s.dateTime(s.StartTime, loc)
}

// EndDateTime returns the slot end as a time.Time in the given location.
func (s *TimeSlot) EndDateTime(loc *time.Location) (time.Time, error) {
	return s.dateTime(s.EndTime, loc)
}

func (s *TimeSlot) dateTime(t types.TimeString, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, s.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot date %q: %w", s.Date, err)
	}
	return t.OnDate(date)
}
