package bookings

import "errors"

var (
	// ErrAccessDenied возвращается, когда операция доступна только владельцу
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
