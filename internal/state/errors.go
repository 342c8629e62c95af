package state

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот с указанным id не существует
	ErrSlotNotFound = errors.New("state: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = errors.New("state: slot already booked")
)
