package settings

import (
	"fmt"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/service/settings/models"
)

// Service сервис настроек бронирования (owner-facing конфигурация)
type Service struct {
	state  AppState
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(state AppState, logger Logger) *Service {
	return &Service{
		state:  state,
		logger: logger,
	}
}

// Get возвращает текущие настройки
// Доступно только владельцу
func (s *Service) Get(role domain.Role) (*models.SettingsResponse, error) {
	if role != domain.RoleOwner {
		s.logger.Warn("Get: access denied for role=%s", role)
		return nil, ErrAccessDenied
	}

	return models.FromDomainSettings(s.state.Settings()), nil
}

// Update заменяет настройки целиком и запускает перегенерацию слотов
// Доступно только владельцу; ошибки валидации прерывают операцию
// до какой-либо мутации состояния
func (s *Service) Update(role domain.Role, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if role != domain.RoleOwner {
		s.logger.Warn("Update: access denied for role=%s", role)
		return nil, ErrAccessDenied
	}

	newSettings := req.ToDomainSettings()
	if err := validateSettings(&newSettings); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	s.state.UpdateSettings(newSettings)

	s.logger.Info("Update: settings updated, business=%q, slot_duration=%d",
		newSettings.BusinessName, newSettings.SlotDuration)
	return models.FromDomainSettings(s.state.Settings()), nil
}

// validateSettings проверяет настройки перед применением
func validateSettings(s *domain.BookingSettings) error {
	if s.BusinessName == "" {
		return fmt.Errorf("%w: businessName is required", ErrInvalidInput)
	}

	if !domain.IsAllowedSlotDuration(s.SlotDuration) {
		return fmt.Errorf("%w: slotDuration must be one of %v", ErrInvalidInput, domain.SlotDurationOptions)
	}

	if len(s.WorkingHours) != 7 {
		return fmt.Errorf("%w: workingHours must contain exactly 7 entries", ErrInvalidInput)
	}

	seen := make(map[int]bool, 7)
	for _, wh := range s.WorkingHours {
		if wh.Day < 0 || wh.Day > 6 {
			return fmt.Errorf("%w: day must be in range 0-6, got %d", ErrInvalidInput, wh.Day)
		}
		if seen[wh.Day] {
			return fmt.Errorf("%w: duplicate workingHours entry for day %d", ErrInvalidInput, wh.Day)
		}
		seen[wh.Day] = true

		if err := wh.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d: %v", ErrInvalidInput, wh.Day, err)
		}
		if err := wh.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d: %v", ErrInvalidInput, wh.Day, err)
		}
		if !wh.StartTime.IsBefore(wh.EndTime) {
			return fmt.Errorf("%w: day %d: startTime must be before endTime", ErrInvalidInput, wh.Day)
		}
	}

	return nil
}
