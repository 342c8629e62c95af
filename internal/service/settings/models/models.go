package models

import (
	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/pkg/types"
)

// Request модели

// WorkingHoursDTO запись недельного шаблона рабочих часов
type WorkingHoursDTO struct {
	Day       int    `json:"day"` // 0 = Sunday .. 6 = Saturday
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// UpdateSettingsRequest запрос на обновление настроек
// Настройки заменяются целиком, частичного обновления нет
type UpdateSettingsRequest struct {
	SlotDuration int               `json:"slotDuration"`
	WorkingHours []WorkingHoursDTO `json:"workingHours"`
	BusinessName string            `json:"businessName"`
	Description  string            `json:"description"`
	OwnerEmail   *string           `json:"ownerEmail,omitempty"`
}

// Response модели

// SettingsResponse ответ с текущими настройками
type SettingsResponse struct {
	SlotDuration    int               `json:"slotDuration"`
	WorkingHours    []WorkingHoursDTO `json:"workingHours"`
	BusinessName    string            `json:"businessName"`
	Description     string            `json:"description"`
	OwnerEmail      *string           `json:"ownerEmail,omitempty"`
	DurationOptions []int             `json:"durationOptions"`
}

// Методы конвертации

// ToDomainSettings конвертирует запрос в domain модель
// Формат времени здесь не проверяется - валидация выполняется сервисом
func (r *UpdateSettingsRequest) ToDomainSettings() domain.BookingSettings {
	hours := make([]domain.WorkingHours, len(r.WorkingHours))
	for i, wh := range r.WorkingHours {
		hours[i] = domain.WorkingHours{
			Day:       wh.Day,
			Enabled:   wh.Enabled,
			StartTime: types.TimeString(wh.StartTime),
			EndTime:   types.TimeString(wh.EndTime),
		}
	}

	return domain.BookingSettings{
		SlotDuration: r.SlotDuration,
		WorkingHours: hours,
		BusinessName: r.BusinessName,
		Description:  r.Description,
		OwnerEmail:   r.OwnerEmail,
	}
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s domain.BookingSettings) *SettingsResponse {
	hours := make([]WorkingHoursDTO, len(s.WorkingHours))
	for i, wh := range s.WorkingHours {
		hours[i] = WorkingHoursDTO{
			Day:       wh.Day,
			Enabled:   wh.Enabled,
			StartTime: wh.StartTime.String(),
			EndTime:   wh.EndTime.String(),
		}
	}

	return &SettingsResponse{
		SlotDuration:    s.SlotDuration,
		WorkingHours:    hours,
		BusinessName:    s.BusinessName,
		Description:     s.Description,
		OwnerEmail:      s.OwnerEmail,
		DurationOptions: domain.SlotDurationOptions,
	}
}
