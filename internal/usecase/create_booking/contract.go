package create_booking

import (
	"context"
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/integrations/authservice"
)

// AppState интерфейс состояния приложения
type AppState interface {
	Book(slotID string, info domain.CustomerInfo) (*domain.Booking, error)
	Settings() domain.BookingSettings
}

// BookingRepository интерфейс репозитория бронирований (внешнее хранилище)
type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
}

// AuthServiceClient интерфейс клиента auth-сервиса
// Дает сессию владельца (для токена календаря) и вызов серверной функции
// отправки писем
type AuthServiceClient interface {
	GetSession(ctx context.Context) (*authservice.Session, error)
	InvokeFunction(ctx context.Context, name string, payload interface{}) ([]byte, error)
}

// CalendarClient интерфейс клиента внешнего календаря
type CalendarClient interface {
	InsertEvent(ctx context.Context, accessToken string, booking *domain.Booking, businessName string) (string, error)
}

// Metrics интерфейс бизнес-метрик бронирования
type Metrics interface {
	IncBookingsCreated()
	IncSideEffectFailure(effect string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
