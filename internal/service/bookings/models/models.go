package models

import (
	"time"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

// TimeSlotResponse снапшот слота внутри бронирования
type TimeSlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerPhone *string          `json:"customerPhone,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	TimeSlot      TimeSlotResponse `json:"timeSlot"`
	CreatedAt     string           `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		TimeSlot: TimeSlotResponse{
			ID:        b.TimeSlot.ID,
			Date:      b.TimeSlot.Date,
			StartTime: b.TimeSlot.StartTime.String(),
			EndTime:   b.TimeSlot.EndTime.String(),
		},
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
		Total:    len(bookings),
	}

	for i := range bookings {
		resp.Bookings[i] = *FromDomainBooking(&bookings[i])
	}

	return resp
}
