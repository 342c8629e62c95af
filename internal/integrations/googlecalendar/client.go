package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Google Calendar API
// Вставляет события в primary календарь владельца по его OAuth access token
type Client struct {
	location *time.Location
	log      Logger
}

// NewClient создает новый экземпляр клиента календаря
// location задает таймзону событий (таймзона бизнеса)
func NewClient(location *time.Location, log Logger) *Client {
	if location == nil {
		location = time.Local
	}
	return &Client{
		location: location,
		log:      log,
	}
}

// InsertEvent вставляет событие бронирования в календарь владельца
// accessToken - OAuth token с calendar.events scope из сессии владельца
// Возвращает id созданного события
func (c *Client) InsertEvent(ctx context.Context, accessToken string, booking *domain.Booking, businessName string) (string, error) {
	event, err := NewEvent(booking, businessName, c.location)
	if err != nil {
		return "", err
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	created, err := svc.Events.Insert("primary", event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	c.log.Info("Calendar event created: event_id=%s, booking_id=%s", created.Id, booking.ID)
	return created.Id, nil
}
