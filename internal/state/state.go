package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/internal/slotgen"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// AppState явное состояние приложения на время сессии: настройки,
// сгенерированные слоты и список бронирований. Заменяет неявное глобальное
// состояние UI-провайдера исходной системы.
//
// Модель однопользовательская: бронирование выполняется по схеме
// check-then-act без транзакционной защиты. Мьютекс сериализует доступ
// из конкурентных HTTP-обработчиков, но не является механизмом разрешения
// гонок между сессиями.
type AppState struct {
	mu sync.Mutex

	settings domain.BookingSettings
	slots    []domain.TimeSlot
	bookings []domain.Booking

	windowDays   int
	timeProvider TimeProvider
}

// New создает состояние с указанными настройками и генерирует слоты
// на стандартное окно в windowDays дней от текущей даты
func New(settings domain.BookingSettings, windowDays int) *AppState {
	s := &AppState{
		settings:     settings,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
	}
	s.regenerate()
	return s
}

// NewWithTimeProvider создает состояние с подменяемым источником времени
func NewWithTimeProvider(settings domain.BookingSettings, windowDays int, tp TimeProvider) *AppState {
	s := &AppState{
		settings:     settings,
		windowDays:   windowDays,
		timeProvider: tp,
	}
	s.regenerate()
	return s
}

// Settings возвращает копию текущих настроек
func (s *AppState) Settings() domain.BookingSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySettings(s.settings)
}

// UpdateSettings заменяет настройки целиком и перегенерирует все слоты
// окна с нуля. Генерация не инкрементальная: на масштабе 30-дневного окна
// полный пересчет дешев.
//
// Слоты дней, выключенных новыми настройками, исчезают из окна, даже если
// на них есть бронирования - само бронирование при этом сохраняется
// (осиротевшее бронирование остается в списке).
func (s *AppState) UpdateSettings(settings domain.BookingSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = copySettings(settings)
	s.regenerate()
}

// Slots возвращает копию всех слотов текущего окна
func (s *AppState) Slots() []domain.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlots(s.slots)
}

// SlotsInRange возвращает слоты, даты которых попадают в [startDate, endDate]
// (включительно по дням). Диапазон шире окна генерации урезается окном.
func (s *AppState) SlotsInRange(startDate, endDate time.Time) []domain.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := startDate.Format(domain.DateFormat)
	to := endDate.Format(domain.DateFormat)

	result := make([]domain.TimeSlot, 0)
	for _, slot := range s.slots {
		if slot.Date >= from && slot.Date <= to {
			result = append(result, slot)
		}
	}
	return result
}

// Bookings возвращает копию списка бронирований
func (s *AppState) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyBookings(s.bookings)
}

// BookingByID возвращает бронирование по id или nil
func (s *AppState) BookingByID(id string) *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b
		}
	}
	return nil
}

// Book регистрирует бронирование слота: создает Booking со свежим id и
// текущим временем, добавляет его в список и помечает слот занятым.
//
// Единственный путь мутации бронирований; операций отмены и редактирования
// нет. Возвращает ErrSlotNotFound / ErrSlotAlreadyBooked, если слот
// не существует или уже занят - состояние при этом не меняется.
func (s *AppState) Book(slotID string, info domain.CustomerInfo) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var slot *domain.TimeSlot
	for i := range s.slots {
		if s.slots[i].ID == slotID {
			slot = &s.slots[i]
			break
		}
	}

	if slot == nil {
		return nil, ErrSlotNotFound
	}
	if slot.IsBooked {
		return nil, ErrSlotAlreadyBooked
	}

	now := s.timeProvider.Now()

	slot.IsBooked = true
	slot.BookedBy = &info.CustomerName
	bookedAt := now
	slot.BookedAt = &bookedAt

	booking := domain.Booking{
		ID:            uuid.NewString(),
		CustomerName:  info.CustomerName,
		CustomerEmail: info.CustomerEmail,
		CustomerPhone: info.CustomerPhone,
		Notes:         info.Notes,
		TimeSlot:      *slot,
		CreatedAt:     now,
	}

	s.bookings = append(s.bookings, booking)

	result := booking
	return &result, nil
}

// Restore загружает ранее сохраненные бронирования (например, из внешнего
// хранилища при старте) и перегенерирует слоты с их учетом
func (s *AppState) Restore(bookings []domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = copyBookings(bookings)
	s.regenerate()
}

// regenerate пересчитывает слоты окна с нуля; вызывать под мьютексом
func (s *AppState) regenerate() {
	start, end := slotgen.WindowFor(s.timeProvider.Now(), s.windowDays)
	s.slots = slotgen.Generate(s.settings, start, end, s.bookings)
}

func copySettings(src domain.BookingSettings) domain.BookingSettings {
	dst := src
	dst.WorkingHours = make([]domain.WorkingHours, len(src.WorkingHours))
	copy(dst.WorkingHours, src.WorkingHours)
	return dst
}

func copySlots(src []domain.TimeSlot) []domain.TimeSlot {
	dst := make([]domain.TimeSlot, len(src))
	copy(dst, src)
	return dst
}

func copyBookings(src []domain.Booking) []domain.Booking {
	dst := make([]domain.Booking, len(src))
	copy(dst, src)
	return dst
}
