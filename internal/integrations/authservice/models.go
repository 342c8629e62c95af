package authservice

import (
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// User пользователь auth-сервиса
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session текущая сессия владельца
// ProviderToken - OAuth access token провайдера (используется для календаря)
type Session struct {
	User          User   `json:"user"`
	AccessToken   string `json:"access_token"`
	ProviderToken string `json:"provider_token,omitempty"`
	ExpiresAt     int64  `json:"expires_at"`
}

// TimeSlotPayload снапшот слота в JSON-формате серверной функции
type TimeSlotPayload struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingPayload бронирование в JSON-формате серверной функции
type BookingPayload struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone *string         `json:"customerPhone,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	TimeSlot      TimeSlotPayload `json:"timeSlot"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// EmailPayload тело вызова функции send-booking-emails
type EmailPayload struct {
	Booking       BookingPayload `json:"booking"`
	BusinessName  string         `json:"businessName"`
	OwnerEmail    *string        `json:"ownerEmail,omitempty"`
	CustomerEmail string         `json:"customerEmail"`
	ICSContent    string         `json:"icsContent"`
}

// FromDomainBooking конвертирует domain модель в payload серверной функции
func FromDomainBooking(b *domain.Booking) BookingPayload {
	return BookingPayload{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		TimeSlot: TimeSlotPayload{
			ID:        b.TimeSlot.ID,
			Date:      b.TimeSlot.Date,
			StartTime: b.TimeSlot.StartTime.String(),
			EndTime:   b.TimeSlot.EndTime.String(),
		},
		CreatedAt: b.CreatedAt,
	}
}

// ErrorResponse модель ошибки от auth-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
