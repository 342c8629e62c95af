package get_time_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/state"
	"github.com/Zero-Index-Tech/ZeroBook/pkg/types"
)

// 2025-01-06 - понедельник
var testNow = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

func newTestState(t *testing.T) *state.AppState {
	t.Helper()

	settings := domain.BookingSettings{
		SlotDuration: 30,
		WorkingHours: []domain.WorkingHours{
			{Day: 1, Enabled: true, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00")},
		},
		BusinessName: "My Business",
	}
	return state.NewWithTimeProvider(settings, 7, &fixedTimeProvider{now: testNow})
}

func TestExecute_ReturnsSlotsInPeriod(t *testing.T) {
	appState := newTestState(t)
	uc := New(appState, &nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "2025-01-06-09:00", resp.Slots[0].ID)
	assert.Equal(t, "09:30", resp.Slots[1].StartTime)
	assert.Equal(t, 30, resp.SlotDuration)
}

func TestExecute_IncludesBookedSlots(t *testing.T) {
	appState := newTestState(t)
	_, err := appState.Book("2025-01-06-09:00", domain.CustomerInfo{CustomerName: "Jane"})
	require.NoError(t, err)

	uc := New(appState, &nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Занятые слоты не скрываются, а помечаются
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].IsBooked)
	assert.False(t, resp.Slots[1].IsBooked)
}

func TestExecute_EmptyPeriod(t *testing.T) {
	appState := newTestState(t)
	uc := New(appState, &nopLogger{})

	// Вторник - в шаблоне выключен
	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidPeriod(t *testing.T) {
	appState := newTestState(t)
	uc := New(appState, &nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "endDate раньше startDate",
			req: &Request{
				StartDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "нулевые даты",
			req:  &Request{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}
