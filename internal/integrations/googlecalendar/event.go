package googlecalendar

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

// NewEvent строит событие календаря из бронирования:
// summary, description с контактами клиента, start/end с таймзоной,
// клиент в attendees, напоминания за сутки (email) и за 30 минут (popup)
func NewEvent(booking *domain.Booking, businessName string, loc *time.Location) (*calendar.Event, error) {
	start, err := booking.TimeSlot.StartDateTime(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: slot start: %v", ErrInternal, err)
	}

	end, err := booking.TimeSlot.EndDateTime(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: slot end: %v", ErrInternal, err)
	}

	description := fmt.Sprintf(
		"Appointment Details:\nCustomer: %s\nEmail: %s\nPhone: %s\n\nNotes: %s\n\nThis appointment was booked through your online booking system.",
		booking.CustomerName,
		booking.CustomerEmail,
		orDefault(booking.CustomerPhone, "Not provided"),
		orDefault(booking.Notes, "No additional notes"),
	)

	return &calendar.Event{
		Summary:     fmt.Sprintf("%s - Appointment with %s", businessName, booking.CustomerName),
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		Attendees: []*calendar.EventAttendee{
			{
				Email:       booking.CustomerEmail,
				DisplayName: booking.CustomerName,
			},
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}, nil
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
