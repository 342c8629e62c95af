package get_time_slots

import (
	getTimeSlots "github.com/Zero-Index-Tech/ZeroBook/internal/usecase/get_time_slots"
)

// SlotResponse слот в HTTP ответе
type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

// GetTimeSlotsResponse HTTP ответ со слотами периода
type GetTimeSlotsResponse struct {
	Slots        []SlotResponse `json:"slots"`
	Total        int            `json:"total"`
	SlotDuration int            `json:"slotDuration"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getTimeSlots.Response) *GetTimeSlotsResponse {
	result := &GetTimeSlotsResponse{
		Slots:        make([]SlotResponse, len(resp.Slots)),
		Total:        len(resp.Slots),
		SlotDuration: resp.SlotDuration,
	}

	for i, slot := range resp.Slots {
		result.Slots[i] = SlotResponse{
			ID:        slot.ID,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsBooked:  slot.IsBooked,
		}
	}

	return result
}
