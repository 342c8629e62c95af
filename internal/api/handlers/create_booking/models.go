package create_booking

import (
	"time"

	createBooking "github.com/Zero-Index-Tech/ZeroBook/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP запрос на создание бронирования
type CreateBookingRequest struct {
	SlotID        string  `json:"slotId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		SlotID:        r.SlotID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}

// TimeSlotResponse снапшот забронированного слота в HTTP ответе
type TimeSlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SideEffectsResponse результаты best-effort шагов в HTTP ответе
type SideEffectsResponse struct {
	EmailSent       bool     `json:"emailSent"`
	CalendarSynced  bool     `json:"calendarSynced"`
	CalendarEventID *string  `json:"calendarEventId,omitempty"`
	Warnings        []string `json:"warnings"`
}

// CreateBookingResponse HTTP ответ с созданным бронированием
type CreateBookingResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail"`
	CustomerPhone *string             `json:"customerPhone,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
	TimeSlot      TimeSlotResponse    `json:"timeSlot"`
	CreatedAt     string              `json:"createdAt"`
	SideEffects   SideEffectsResponse `json:"sideEffects"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Notes:         resp.Notes,
		TimeSlot: TimeSlotResponse{
			ID:        resp.SlotID,
			Date:      resp.SlotDate,
			StartTime: resp.SlotStartTime,
			EndTime:   resp.SlotEndTime,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		SideEffects: SideEffectsResponse{
			EmailSent:       resp.SideEffects.EmailSent,
			CalendarSynced:  resp.SideEffects.CalendarSynced,
			CalendarEventID: resp.SideEffects.CalendarEventID,
			Warnings:        resp.SideEffects.Warnings,
		},
	}
}
