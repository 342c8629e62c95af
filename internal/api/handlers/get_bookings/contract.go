package get_bookings

import (
	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/service/bookings/models"
)

type BookingsService interface {
	List(role domain.Role) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
