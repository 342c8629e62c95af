package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/service/settings/models"
	"github.com/Zero-Index-Tech/ZeroBook/internal/state"
)

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(t *testing.T) (*Service, *state.AppState) {
	t.Helper()

	// 2025-01-06 - понедельник
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	appState := state.NewWithTimeProvider(domain.DefaultSettings(), 7, &fixedTimeProvider{now: now})
	return NewService(appState, &nopLogger{}), appState
}

func validUpdateRequest() *models.UpdateSettingsRequest {
	hours := make([]models.WorkingHoursDTO, 7)
	for i := range hours {
		hours[i] = models.WorkingHoursDTO{
			Day:       i,
			Enabled:   i >= 1 && i <= 5,
			StartTime: "10:00",
			EndTime:   "16:00",
		}
	}
	return &models.UpdateSettingsRequest{
		SlotDuration: 45,
		WorkingHours: hours,
		BusinessName: "New Business",
	}
}

func TestGet(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Get(domain.RoleOwner)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDuration)
	assert.Equal(t, "My Business", resp.BusinessName)
	assert.Len(t, resp.WorkingHours, 7)
	assert.Equal(t, domain.SlotDurationOptions, resp.DurationOptions)
}

func TestGet_AccessDenied(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Get(domain.RoleCustomer)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resp)
}

func TestUpdate_Success(t *testing.T) {
	svc, appState := newTestService(t)

	resp, err := svc.Update(domain.RoleOwner, validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, 45, resp.SlotDuration)
	assert.Equal(t, "New Business", resp.BusinessName)

	// Слоты перегенерированы по новым настройкам
	slots := appState.Slots()
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", slots[0].StartTime.String())
	assert.Equal(t, "10:45", slots[0].EndTime.String())
}

func TestUpdate_AccessDenied(t *testing.T) {
	svc, appState := newTestService(t)
	before := appState.Settings()

	resp, err := svc.Update(domain.RoleCustomer, validUpdateRequest())

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resp)
	assert.Equal(t, before, appState.Settings())
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpdateSettingsRequest)
	}{
		{
			name:   "пустое имя бизнеса",
			mutate: func(r *models.UpdateSettingsRequest) { r.BusinessName = "" },
		},
		{
			name:   "недопустимая длительность слота",
			mutate: func(r *models.UpdateSettingsRequest) { r.SlotDuration = 25 },
		},
		{
			name:   "неполный недельный шаблон",
			mutate: func(r *models.UpdateSettingsRequest) { r.WorkingHours = r.WorkingHours[:6] },
		},
		{
			name: "дублирующийся день",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.WorkingHours[6].Day = 0
			},
		},
		{
			name: "день вне диапазона",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.WorkingHours[6].Day = 7
			},
		},
		{
			name: "невалидное время",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.WorkingHours[1].StartTime = "9am"
			},
		},
		{
			name: "начало не раньше конца",
			mutate: func(r *models.UpdateSettingsRequest) {
				r.WorkingHours[1].StartTime = "16:00"
				r.WorkingHours[1].EndTime = "10:00"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, appState := newTestService(t)
			before := appState.Settings()

			req := validUpdateRequest()
			tt.mutate(req)

			resp, err := svc.Update(domain.RoleOwner, req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
			// Ошибка валидации не меняет состояние
			assert.Equal(t, before, appState.Settings())
		})
	}
}
