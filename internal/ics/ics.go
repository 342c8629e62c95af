package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

// Формат дат ICS: YYYYMMDDTHHmmss
const icsDateLayout = "20060102T150405"

// Generate формирует содержимое .ics файла (VCALENDAR с одним VEVENT)
// для бронирования. Обязательные поля: UID, DTSTAMP, DTSTART/DTEND,
// SUMMARY, DESCRIPTION, ORGANIZER и один ATTENDEE. Строки разделяются CRLF.
func Generate(booking *domain.Booking, businessName string, now time.Time) (string, error) {
	start, err := booking.TimeSlot.StartDateTime(now.Location())
	if err != nil {
		return "", fmt.Errorf("ics: slot start: %w", err)
	}

	end, err := booking.TimeSlot.EndDateTime(now.Location())
	if err != nil {
		return "", fmt.Errorf("ics: slot end: %w", err)
	}

	businessDomain := strings.ToLower(strings.ReplaceAll(businessName, " ", "-"))
	uid := fmt.Sprintf("%s-%d@%s.com", booking.ID, now.UnixMilli(), businessDomain)

	description := fmt.Sprintf(
		"Your appointment with %s is confirmed.\\n\\nCustomer: %s\\nEmail: %s\\nPhone: %s\\n\\nNotes: %s",
		businessName,
		booking.CustomerName,
		booking.CustomerEmail,
		orDefault(booking.CustomerPhone, "Not provided"),
		orDefault(booking.Notes, "None"),
	)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:REQUEST",
		fmt.Sprintf("PRODID:-//%s//Booking System//EN", businessName),
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s", uid),
		fmt.Sprintf("DTSTAMP:%s", now.Format(icsDateLayout)),
		fmt.Sprintf("DTSTART:%s", start.Format(icsDateLayout)),
		fmt.Sprintf("DTEND:%s", end.Format(icsDateLayout)),
		fmt.Sprintf("SUMMARY:Appointment at %s", businessName),
		fmt.Sprintf("DESCRIPTION:%s", description),
		fmt.Sprintf("LOCATION:%s", businessName),
		fmt.Sprintf("ORGANIZER:CN=%s:mailto:noreply@%s.com", businessName, businessDomain),
		fmt.Sprintf("ATTENDEE;CN=%s;RSVP=TRUE:mailto:%s", booking.CustomerName, booking.CustomerEmail),
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return strings.Join(lines, "\r\n"), nil
}

// Filename возвращает имя файла для скачивания
func Filename(booking *domain.Booking) string {
	return fmt.Sprintf("appointment-%s.ics", booking.ID)
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
