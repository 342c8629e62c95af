package get_bookings

import (
	"errors"
	"net/http"

	"github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers"
	"github.com/Zero-Index-Tech/ZeroBook/internal/api/middleware"
	bookingsService "github.com/Zero-Index-Tech/ZeroBook/internal/service/bookings"
)

const msgAccessDenied = "просмотр бронирований доступен только владельцу"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Владельческая операция: список всех бронирований сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role := middleware.RoleFromContext(r.Context())

	result, err := h.service.List(role)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /bookings - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returning %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
