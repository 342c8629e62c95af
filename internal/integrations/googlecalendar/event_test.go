package googlecalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/pkg/ptr"
	"github.com/Zero-Index-Tech/ZeroBook/pkg/types"
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "booking-1",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		TimeSlot: domain.TimeSlot{
			ID:        "2025-01-06-09:00",
			Date:      "2025-01-06",
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("09:30"),
		},
	}
}

func TestNewEvent(t *testing.T) {
	event, err := NewEvent(testBooking(), "My Business", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "My Business - Appointment with Jane Doe", event.Summary)
	assert.Equal(t, "2025-01-06T09:00:00Z", event.Start.DateTime)
	assert.Equal(t, "2025-01-06T09:30:00Z", event.End.DateTime)
	assert.Equal(t, "UTC", event.Start.TimeZone)

	require.Len(t, event.Attendees, 1)
	assert.Equal(t, "jane@example.com", event.Attendees[0].Email)

	require.NotNil(t, event.Reminders)
	assert.False(t, event.Reminders.UseDefault)
	require.Len(t, event.Reminders.Overrides, 2)
	assert.Equal(t, "email", event.Reminders.Overrides[0].Method)
	assert.Equal(t, int64(1440), event.Reminders.Overrides[0].Minutes)
	assert.Equal(t, "popup", event.Reminders.Overrides[1].Method)
	assert.Equal(t, int64(30), event.Reminders.Overrides[1].Minutes)
	assert.Equal(t, []string{"UseDefault"}, event.Reminders.ForceSendFields)
}

func TestNewEvent_DescriptionDefaults(t *testing.T) {
	booking := testBooking()
	booking.CustomerPhone = ptr.Ptr("+1234567")
	booking.Notes = nil

	event, err := NewEvent(booking, "My Business", time.UTC)
	require.NoError(t, err)

	assert.Contains(t, event.Description, "Phone: +1234567")
	assert.Contains(t, event.Description, "Notes: No additional notes")
}

func TestNewEvent_InvalidSlot(t *testing.T) {
	booking := testBooking()
	booking.TimeSlot.Date = "not-a-date"

	_, err := NewEvent(booking, "My Business", time.UTC)
	assert.ErrorIs(t, err, ErrInternal)
}
