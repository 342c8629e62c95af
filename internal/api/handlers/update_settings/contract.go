package update_settings

import (
	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/service/settings/models"
)

type SettingsService interface {
	Update(role domain.Role, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
