package get_time_slots

import (
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

// Request модель запроса слотов за период
type Request struct {
	StartDate time.Time // начало периода (включительно, по дням)
	EndDate   time.Time // конец периода (включительно, по дням)
}

// Slot модель слота в ответе
// Занятые слоты отдаются вместе со свободными: клиент показывает их
// недоступными, а не скрывает
type Slot struct {
	ID        string
	Date      string
	StartTime string
	EndTime   string
	IsBooked  bool
}

// Response модель ответа со слотами периода
type Response struct {
	Slots        []Slot
	SlotDuration int
}

// fromDomainSlots конвертирует domain модели в ответ use case
func fromDomainSlots(slots []domain.TimeSlot, slotDuration int) *Response {
	resp := &Response{
		Slots:        make([]Slot, len(slots)),
		SlotDuration: slotDuration,
	}

	for i, slot := range slots {
		resp.Slots[i] = Slot{
			ID:        slot.ID,
			Date:      slot.Date,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			IsBooked:  slot.IsBooked,
		}
	}

	return resp
}
