package domain

import "github.com/Zero-Index-Tech/ZeroBook/pkg/types"

// WorkingHours is the recurring weekly template entry for a single weekday.
// Day follows time.Weekday numbering: 0 = Sunday .. 6 = Saturday.
type WorkingHours struct {
	Day       int
	Enabled   bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// BookingSettings is the owner-facing configuration: business identity,
// slot duration and the weekly working-hours template (one entry per weekday,
// day values unique across the set). Settings are mutated wholesale; every
// update drives a full regeneration of the slot window.
type BookingSettings struct {
	SlotDuration int // minutes
	WorkingHours []WorkingHours
	BusinessName string
	Description  string
	OwnerEmail   *string
}

// HoursForDay returns the working-hours entry for the given weekday,
// or nil if the template has no entry for it.
func (s *BookingSettings) HoursForDay(day int) *WorkingHours {
	for i := range s.WorkingHours {
		if s.WorkingHours[i].Day == day {
			return &s.WorkingHours[i]
		}
	}
	return nil
}

// DefaultSettings returns the initial configuration: 30-minute slots,
// Monday to Friday 09:00-17:00, weekend disabled.
func DefaultSettings() BookingSettings {
	hours := make([]WorkingHours, 7)
	for day := 0; day < 7; day++ {
		hours[day] = WorkingHours{
			Day:       day,
			Enabled:   day >= 1 && day <= 5,
			StartTime: "09:00",
			EndTime:   "17:00",
		}
	}

	return BookingSettings{
		SlotDuration: DefaultSlotDurationMinutes,
		WorkingHours: hours,
		BusinessName: "My Business",
		Description:  "Book an appointment with us",
	}
}
