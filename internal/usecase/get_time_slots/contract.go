package get_time_slots

import (
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

// AppState интерфейс состояния приложения
type AppState interface {
	SlotsInRange(startDate, endDate time.Time) []domain.TimeSlot
	Settings() domain.BookingSettings
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
