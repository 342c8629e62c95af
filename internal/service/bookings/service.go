package bookings

import (
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/ics"
	"github.com/Zero-Index-Tech/ZeroBook/internal/service/bookings/models"
)

// Service сервис просмотра бронирований и выгрузки календарных файлов
type Service struct {
	state  AppState
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(state AppState, logger Logger) *Service {
	return &Service{
		state:  state,
		logger: logger,
	}
}

// List возвращает все бронирования сессии
// Доступно только владельцу (customer видит только свободные слоты)
func (s *Service) List(role domain.Role) (*models.BookingListResponse, error) {
	if role != domain.RoleOwner {
		s.logger.Warn("List: access denied for role=%s", role)
		return nil, ErrAccessDenied
	}

	bookings := s.state.Bookings()
	s.logger.Info("List: returning %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ExportICS формирует .ics файл для бронирования
// Доступно без роли: id бронирования выдается только его автору
func (s *Service) ExportICS(bookingID string) (filename string, content string, err error) {
	booking := s.state.BookingByID(bookingID)
	if booking == nil {
		s.logger.Warn("ExportICS: booking id=%s not found", bookingID)
		return "", "", ErrBookingNotFound
	}

	content, err = ics.Generate(booking, s.state.Settings().BusinessName, time.Now())
	if err != nil {
		s.logger.Error("ExportICS: failed to generate ics for booking id=%s: %v", bookingID, err)
		return "", "", err
	}

	return ics.Filename(booking), content, nil
}
