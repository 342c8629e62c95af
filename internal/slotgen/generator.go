package slotgen

import (
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

// Generate генерирует упорядоченную последовательность слотов для диапазона
// дат [startDate, endDate] (включительно по дням) на основе недельного
// шаблона рабочих часов и фиксированной длительности слота.
//
// Для каждого дня диапазона:
//   - если день выключен в шаблоне, слоты не генерируются;
//   - курсор идет от startTime к endTime с шагом slotDuration, слот
//     добавляется только если его конец не выходит за endTime (неполный
//     хвостовой слот отбрасывается, а не укорачивается);
//   - id слота детерминированно вычисляется из даты и времени начала,
//     поэтому повторная генерация воспроизводит те же id;
//   - если в списке бронирований есть бронирование со слотом с таким же id,
//     слот помечается занятым и получает bookedBy/bookedAt из бронирования.
//
// Некорректные записи шаблона (невалидное время, end <= start) пропускаются
// целиком - для такого дня слоты не генерируются.
func Generate(
	settings domain.BookingSettings,
	startDate, endDate time.Time,
	bookings []domain.Booking,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	if settings.SlotDuration <= 0 {
		return slots
	}

	// Индекс бронирований по id слота для быстрого поиска
	bookedBy := make(map[string]*domain.Booking, len(bookings))
	for i := range bookings {
		bookedBy[bookings[i].TimeSlot.ID] = &bookings[i]
	}

	day := truncateToDay(startDate)
	last := truncateToDay(endDate)

	for !day.After(last) {
		hours := settings.HoursForDay(int(day.Weekday()))
		if hours != nil && hours.Enabled {
			slots = append(slots, generateDay(day, *hours, settings.SlotDuration, bookedBy)...)
		}
		day = day.AddDate(0, 0, 1)
	}

	return slots
}

// generateDay генерирует слоты одного дня
func generateDay(
	day time.Time,
	hours domain.WorkingHours,
	slotDuration int,
	bookedBy map[string]*domain.Booking,
) []domain.TimeSlot {
	if hours.StartTime.Validate() != nil || hours.EndTime.Validate() != nil {
		return nil
	}
	if !hours.StartTime.IsBefore(hours.EndTime) {
		return nil
	}

	var slots []domain.TimeSlot
	cursor := hours.StartTime

	for cursor.IsBefore(hours.EndTime) {
		slotEnd, err := cursor.AddMinutes(slotDuration)
		if err != nil {
			// Переход через полночь - дальше слотов нет
			break
		}
		if slotEnd.IsAfter(hours.EndTime) {
			break
		}

		slot := domain.TimeSlot{
			ID:        domain.SlotID(day, cursor),
			Date:      day.Format(domain.DateFormat),
			StartTime: cursor,
			EndTime:   slotEnd,
		}

		if booking, ok := bookedBy[slot.ID]; ok {
			slot.IsBooked = true
			slot.BookedBy = &booking.CustomerName
			bookedAt := booking.CreatedAt
			slot.BookedAt = &bookedAt
		}

		slots = append(slots, slot)
		cursor = slotEnd
	}

	return slots
}

// WindowFor возвращает диапазон дат стандартного окна генерации:
// от from до from + days дней
func WindowFor(from time.Time, days int) (time.Time, time.Time) {
	start := truncateToDay(from)
	return start, start.AddDate(0, 0, days)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
