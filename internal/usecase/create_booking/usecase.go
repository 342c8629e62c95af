package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/ics"
	"github.com/Zero-Index-Tech/ZeroBook/internal/infra/storage/booking"
	"github.com/Zero-Index-Tech/ZeroBook/internal/integrations/authservice"
	"github.com/Zero-Index-Tech/ZeroBook/internal/state"
)

// emailFunctionName имя серверной функции отправки писем
const emailFunctionName = "send-booking-emails"

// UseCase создание бронирования с цепочкой побочных эффектов:
// регистрация в состоянии -> запись во внешнее хранилище -> письма ->
// событие календаря. Шаги после регистрации выполняются по принципу
// best-effort: их неудача фиксируется в ответе, бронирование сохраняется.
type UseCase struct {
	appState AppState
	repo     BookingRepository
	auth     AuthServiceClient
	calendar CalendarClient
	metrics  Metrics
	time     TimeProvider
	logger   Logger
}

// New создает новый экземпляр UseCase. repo, auth, calendar и metrics
// опциональны: nil отключает соответствующий шаг
func New(appState AppState, repo BookingRepository, auth AuthServiceClient, calendar CalendarClient, m Metrics, logger Logger) *UseCase {
	return &UseCase{
		appState: appState,
		repo:     repo,
		auth:     auth,
		calendar: calendar,
		metrics:  m,
		time:     &RealTimeProvider{},
		logger:   logger,
	}
}

// NewWithTimeProvider создает UseCase с подменяемым источником времени
func NewWithTimeProvider(appState AppState, repo BookingRepository, auth AuthServiceClient, calendar CalendarClient, m Metrics, tp TimeProvider, logger Logger) *UseCase {
	uc := New(appState, repo, auth, calendar, m, logger)
	uc.time = tp
	return uc
}

// Execute создает бронирование
//
// Порядок строгий: валидация выполняется до любых изменений состояния,
// регистрация слота - единственный шаг, ошибка которого отменяет операцию.
// Ошибка записи во внешнее хранилище (кроме отсутствия таблицы) возвращается
// как ErrStoreUnavailable, но уже зарегистрированное бронирование
// не откатывается - операции отмены в модели нет.
func (u *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		u.logger.Warn("Execute: validation failed: %v", err)
		return nil, err
	}

	info := domain.CustomerInfo{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	}

	bookingRecord, err := u.appState.Book(req.SlotID, info)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrSlotNotFound):
			u.logger.Warn("Execute: slot id=%s not found", req.SlotID)
			return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, req.SlotID)
		case errors.Is(err, state.ErrSlotAlreadyBooked):
			u.logger.Warn("Execute: slot id=%s already booked", req.SlotID)
			return nil, fmt.Errorf("%w: %s", ErrSlotAlreadyBooked, req.SlotID)
		default:
			u.logger.Error("Execute: failed to book slot id=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	u.logger.Info("Execute: booking id=%s created for slot id=%s", bookingRecord.ID, req.SlotID)
	if u.metrics != nil {
		u.metrics.IncBookingsCreated()
	}

	settings := u.appState.Settings()
	effects := SideEffects{Warnings: []string{}}

	if err := u.persist(ctx, bookingRecord, &effects); err != nil {
		return nil, err
	}

	u.sendEmails(ctx, bookingRecord, settings, &effects)
	u.syncCalendar(ctx, bookingRecord, settings, &effects)

	return buildResponse(bookingRecord, effects), nil
}

// persist сохраняет бронирование во внешнем хранилище.
// Отсутствие таблицы - ожидаемое состояние ненастроенного хранилища,
// фиксируется как предупреждение. Прочие ошибки - ErrStoreUnavailable.
func (u *UseCase) persist(ctx context.Context, b *domain.Booking, effects *SideEffects) error {
	if u.repo == nil {
		return nil
	}

	err := u.repo.Insert(ctx, b)
	if err == nil {
		effects.Persisted = true
		return nil
	}

	if errors.Is(err, booking.ErrTableNotFound) {
		u.logger.Warn("persist: bookings table does not exist, booking id=%s kept in memory only", b.ID)
		u.incFailure("store")
		effects.Warnings = append(effects.Warnings, "booking store is not initialized, booking kept in memory")
		return nil
	}

	u.logger.Error("persist: failed to insert booking id=%s: %v", b.ID, err)
	u.incFailure("store")
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// sendEmails вызывает серверную функцию отправки писем подтверждения.
// В payload включается сгенерированный .ics файл для вложения.
func (u *UseCase) sendEmails(ctx context.Context, b *domain.Booking, settings domain.BookingSettings, effects *SideEffects) {
	if u.auth == nil {
		return
	}

	icsContent, err := ics.Generate(b, settings.BusinessName, u.time.Now())
	if err != nil {
		u.logger.Error("sendEmails: failed to generate ics for booking id=%s: %v", b.ID, err)
		effects.Warnings = append(effects.Warnings, "failed to generate calendar attachment")
		icsContent = ""
	}

	payload := authservice.EmailPayload{
		Booking:       authservice.FromDomainBooking(b),
		BusinessName:  settings.BusinessName,
		OwnerEmail:    settings.OwnerEmail,
		CustomerEmail: b.CustomerEmail,
		ICSContent:    icsContent,
	}

	if _, err := u.auth.InvokeFunction(ctx, emailFunctionName, payload); err != nil {
		u.logger.Error("sendEmails: failed to send confirmation emails for booking id=%s: %v", b.ID, err)
		u.incFailure("email")
		effects.Warnings = append(effects.Warnings, "failed to send confirmation emails")
		return
	}

	u.logger.Info("sendEmails: confirmation emails sent for booking id=%s", b.ID)
	effects.EmailSent = true
}

// syncCalendar вставляет событие во внешний календарь владельца.
// Без активной сессии или provider token шаг тихо пропускается -
// календарь не подключен, это не ошибка.
func (u *UseCase) syncCalendar(ctx context.Context, b *domain.Booking, settings domain.BookingSettings, effects *SideEffects) {
	if u.auth == nil || u.calendar == nil {
		return
	}

	session, err := u.auth.GetSession(ctx)
	if err != nil {
		if errors.Is(err, authservice.ErrNoSession) {
			u.logger.Info("syncCalendar: no active session, skipping calendar sync for booking id=%s", b.ID)
			return
		}
		u.logger.Error("syncCalendar: failed to get session for booking id=%s: %v", b.ID, err)
		u.incFailure("calendar")
		effects.Warnings = append(effects.Warnings, "failed to sync with calendar")
		return
	}

	if session.ProviderToken == "" {
		u.logger.Info("syncCalendar: session has no provider token, skipping calendar sync for booking id=%s", b.ID)
		return
	}

	eventID, err := u.calendar.InsertEvent(ctx, session.ProviderToken, b, settings.BusinessName)
	if err != nil {
		u.logger.Error("syncCalendar: failed to insert calendar event for booking id=%s: %v", b.ID, err)
		u.incFailure("calendar")
		effects.Warnings = append(effects.Warnings, "failed to sync with calendar")
		return
	}

	u.logger.Info("syncCalendar: calendar event id=%s created for booking id=%s", eventID, b.ID)
	effects.CalendarSynced = true
	effects.CalendarEventID = &eventID
}

func (u *UseCase) incFailure(effect string) {
	if u.metrics != nil {
		u.metrics.IncSideEffectFailure(effect)
	}
}

func buildResponse(b *domain.Booking, effects SideEffects) *Response {
	return &Response{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		SlotID:        b.TimeSlot.ID,
		SlotDate:      b.TimeSlot.Date,
		SlotStartTime: b.TimeSlot.StartTime.String(),
		SlotEndTime:   b.TimeSlot.EndTime.String(),
		CreatedAt:     b.CreatedAt,
		SideEffects:   effects,
	}
}
