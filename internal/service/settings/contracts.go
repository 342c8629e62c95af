package settings

import "github.com/Zero-Index-Tech/ZeroBook/internal/domain"

// AppState интерфейс состояния приложения
type AppState interface {
	Settings() domain.BookingSettings
	UpdateSettings(settings domain.BookingSettings)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
