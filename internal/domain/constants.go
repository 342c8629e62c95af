package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultSlotWindowDays      = 30 // slots are generated for the next 30 days
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SlotDurationOptions is the fixed enumerated set of slot durations (minutes)
// the owner can choose from.
var SlotDurationOptions = []int{10, 15, 20, 30, 45, 60}

// IsAllowedSlotDuration reports whether d is one of SlotDurationOptions.
func IsAllowedSlotDuration(d int) bool {
	for _, opt := range SlotDurationOptions {
		if opt == d {
			return true
		}
	}
	return false
}
