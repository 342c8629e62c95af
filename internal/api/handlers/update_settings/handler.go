package update_settings

import (
	"errors"
	"net/http"

	"github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers"
	"github.com/Zero-Index-Tech/ZeroBook/internal/api/middleware"
	settingsService "github.com/Zero-Index-Tech/ZeroBook/internal/service/settings"
	"github.com/Zero-Index-Tech/ZeroBook/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные настройки"
	msgAccessDenied       = "изменение настроек доступно только владельцу"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
// Настройки заменяются целиком; успешное обновление перегенерирует слоты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role := middleware.RoleFromContext(r.Context())

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(role, &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrAccessDenied):
			h.logger.Warn("PUT /settings - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated: business=%q, slot_duration=%d",
		result.BusinessName, result.SlotDuration)
	handlers.RespondJSON(w, http.StatusOK, result)
}
