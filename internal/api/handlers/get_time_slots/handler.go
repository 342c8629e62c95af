package get_time_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers"
	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	getTimeSlots "github.com/Zero-Index-Tech/ZeroBook/internal/usecase/get_time_slots"
)

const (
	msgInvalidStartDate = "некорректный формат startDate, ожидается YYYY-MM-DD"
	msgInvalidEndDate   = "некорректный формат endDate, ожидается YYYY-MM-DD"
	msgInvalidPeriod    = "endDate раньше startDate"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
// Без параметров возвращает слоты стандартного окна от текущей даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	startDate := now
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid startDate=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		startDate = parsed
	}

	endDate := startDate.AddDate(0, 0, domain.DefaultSlotWindowDays)
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid endDate=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		endDate = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		default:
			h.logger.Error("GET /slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Returning %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
