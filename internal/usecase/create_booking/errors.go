package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (отсутствуют обязательные поля формы)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotFound возвращается, когда слот с указанным id не существует
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrStoreUnavailable возвращается, когда внешнее хранилище недоступно
	// (кроме ожидаемого случая отсутствия таблицы)
	ErrStoreUnavailable = errors.New("create_booking: booking store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
