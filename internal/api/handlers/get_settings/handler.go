package get_settings

import (
	"errors"
	"net/http"

	"github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers"
	"github.com/Zero-Index-Tech/ZeroBook/internal/api/middleware"
	settingsService "github.com/Zero-Index-Tech/ZeroBook/internal/service/settings"
)

const msgAccessDenied = "настройки доступны только владельцу"

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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role := middleware.RoleFromContext(r.Context())

	result, err := h.service.Get(role)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrAccessDenied):
			h.logger.Warn("GET /settings - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /settings - Failed to get settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
