package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/infra/storage/booking"
	"github.com/Zero-Index-Tech/ZeroBook/internal/integrations/authservice"
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

type mockRepo struct {
	err      error
	inserted []*domain.Booking
}

func (m *mockRepo) Insert(ctx context.Context, b *domain.Booking) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, b)
	return nil
}

type mockAuth struct {
	session    *authservice.Session
	sessionErr error
	invokeErr  error

	invokedNames    []string
	invokedPayloads []interface{}
}

func (m *mockAuth) GetSession(ctx context.Context) (*authservice.Session, error) {
	if m.sessionErr != nil {
		return nil, m.sessionErr
	}
	return m.session, nil
}

func (m *mockAuth) InvokeFunction(ctx context.Context, name string, payload interface{}) ([]byte, error) {
	m.invokedNames = append(m.invokedNames, name)
	m.invokedPayloads = append(m.invokedPayloads, payload)
	if m.invokeErr != nil {
		return nil, m.invokeErr
	}
	return []byte(`{}`), nil
}

type mockCalendar struct {
	eventID string
	err     error
	calls   int
	token   string
}

func (m *mockCalendar) InsertEvent(ctx context.Context, accessToken string, b *domain.Booking, businessName string) (string, error) {
	m.calls++
	m.token = accessToken
	if m.err != nil {
		return "", m.err
	}
	return m.eventID, nil
}

type mockMetrics struct {
	created  int
	failures map[string]int
}

func (m *mockMetrics) IncBookingsCreated() {
	m.created++
}

func (m *mockMetrics) IncSideEffectFailure(effect string) {
	if m.failures == nil {
		m.failures = make(map[string]int)
	}
	m.failures[effect]++
}

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

func validRequest() *Request {
	return &Request{
		SlotID:        "2025-01-06-09:00",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
	}
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "пустой slotId", mutate: func(r *Request) { r.SlotID = "" }},
		{name: "пустое имя", mutate: func(r *Request) { r.CustomerName = "  " }},
		{name: "пустой email", mutate: func(r *Request) { r.CustomerEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appState := newTestState(t)
			uc := New(appState, nil, nil, nil, nil, &nopLogger{})

			req := validRequest()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
			// Валидация отрабатывает до мутации состояния
			assert.Empty(t, appState.Bookings())
			assert.False(t, appState.Slots()[0].IsBooked)
		})
	}
}

func TestExecute_FullPipeline(t *testing.T) {
	appState := newTestState(t)
	repo := &mockRepo{}
	auth := &mockAuth{
		session: &authservice.Session{
			User:          authservice.User{Email: "owner@example.com"},
			ProviderToken: "provider-token",
		},
	}
	calendar := &mockCalendar{eventID: "event-123"}
	m := &mockMetrics{}

	uc := NewWithTimeProvider(appState, repo, auth, calendar, m, &fixedTimeProvider{now: testNow}, &nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "2025-01-06-09:00", resp.SlotID)
	assert.Equal(t, "09:00", resp.SlotStartTime)
	assert.Equal(t, "09:30", resp.SlotEndTime)

	// Хранилище
	require.Len(t, repo.inserted, 1)
	assert.True(t, resp.SideEffects.Persisted)

	// Письма: функция вызвана с ics вложением
	require.Equal(t, []string{"send-booking-emails"}, auth.invokedNames)
	payload, ok := auth.invokedPayloads[0].(authservice.EmailPayload)
	require.True(t, ok)
	assert.Equal(t, "My Business", payload.BusinessName)
	assert.Equal(t, "jane@example.com", payload.CustomerEmail)
	assert.Contains(t, payload.ICSContent, "BEGIN:VCALENDAR")
	assert.True(t, resp.SideEffects.EmailSent)

	// Календарь
	assert.Equal(t, 1, calendar.calls)
	assert.Equal(t, "provider-token", calendar.token)
	assert.True(t, resp.SideEffects.CalendarSynced)
	require.NotNil(t, resp.SideEffects.CalendarEventID)
	assert.Equal(t, "event-123", *resp.SideEffects.CalendarEventID)

	assert.Empty(t, resp.SideEffects.Warnings)
	assert.Equal(t, 1, m.created)
}

func TestExecute_SlotErrors(t *testing.T) {
	tests := []struct {
		name    string
		slotID  string
		prepare func(s *state.AppState)
		wantErr error
	}{
		{
			name:    "слот не существует",
			slotID:  "2025-01-06-23:00",
			wantErr: ErrSlotNotFound,
		},
		{
			name:   "слот уже занят",
			slotID: "2025-01-06-09:00",
			prepare: func(s *state.AppState) {
				_, err := s.Book("2025-01-06-09:00", domain.CustomerInfo{CustomerName: "John"})
				require.NoError(t, err)
			},
			wantErr: ErrSlotAlreadyBooked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appState := newTestState(t)
			if tt.prepare != nil {
				tt.prepare(appState)
			}
			uc := New(appState, nil, nil, nil, nil, &nopLogger{})

			req := validRequest()
			req.SlotID = tt.slotID

			resp, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}

func TestExecute_StoreTableMissingIsSoftFailure(t *testing.T) {
	appState := newTestState(t)
	repo := &mockRepo{err: fmt.Errorf("%w: Insert: relation does not exist", booking.ErrTableNotFound)}
	m := &mockMetrics{}

	uc := New(appState, repo, nil, nil, m, &nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.SideEffects.Persisted)
	assert.NotEmpty(t, resp.SideEffects.Warnings)
	assert.Equal(t, 1, m.failures["store"])

	// Бронирование при этом зарегистрировано
	assert.Len(t, appState.Bookings(), 1)
}

func TestExecute_StoreUnavailableIsHardFailure(t *testing.T) {
	appState := newTestState(t)
	repo := &mockRepo{err: errors.New("connection refused")}

	uc := New(appState, repo, nil, nil, nil, &nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, resp)
}

func TestExecute_EmailFailureIsSoftFailure(t *testing.T) {
	appState := newTestState(t)
	auth := &mockAuth{
		sessionErr: authservice.ErrNoSession,
		invokeErr:  errors.New("function failed"),
	}
	m := &mockMetrics{}

	uc := New(appState, nil, auth, &mockCalendar{}, m, &nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.SideEffects.EmailSent)
	assert.Contains(t, resp.SideEffects.Warnings, "failed to send confirmation emails")
	assert.Equal(t, 1, m.failures["email"])
}

func TestExecute_CalendarSkippedWithoutSession(t *testing.T) {
	appState := newTestState(t)
	auth := &mockAuth{sessionErr: authservice.ErrNoSession}
	calendar := &mockCalendar{}

	uc := New(appState, nil, auth, calendar, nil, &nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Отсутствие сессии - не ошибка, а отключенный календарь
	assert.Equal(t, 0, calendar.calls)
	assert.False(t, resp.SideEffects.CalendarSynced)
	assert.Empty(t, resp.SideEffects.Warnings)
}

func TestExecute_CalendarSkippedWithoutProviderToken(t *testing.T) {
	appState := newTestState(t)
	auth := &mockAuth{session: &authservice.Session{ProviderToken: ""}}
	calendar := &mockCalendar{}

	uc := New(appState, nil, auth, calendar, nil, &nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 0, calendar.calls)
	assert.False(t, resp.SideEffects.CalendarSynced)
	assert.Empty(t, resp.SideEffects.Warnings)
}

func TestExecute_CalendarFailureIsSoftFailure(t *testing.T) {
	appState := newTestState(t)
	auth := &mockAuth{session: &authservice.Session{ProviderToken: "provider-token"}}
	calendar := &mockCalendar{err: errors.New("sync failed")}
	m := &mockMetrics{}

	uc := New(appState, nil, auth, calendar, m, &nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.SideEffects.CalendarSynced)
	assert.Contains(t, resp.SideEffects.Warnings, "failed to sync with calendar")
	assert.Equal(t, 1, m.failures["calendar"])
}

func TestExecute_NoOptionalDependencies(t *testing.T) {
	appState := newTestState(t)

	uc := New(appState, nil, nil, nil, nil, &nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.SideEffects.Persisted)
	assert.False(t, resp.SideEffects.EmailSent)
	assert.False(t, resp.SideEffects.CalendarSynced)
	assert.Empty(t, resp.SideEffects.Warnings)
}
