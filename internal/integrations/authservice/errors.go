package authservice

import "errors"

var (
	// ErrNoSession возвращается, когда активная сессия отсутствует
	ErrNoSession = errors.New("authservice client: no active session")

	// ErrFunctionFailed возвращается, когда серверная функция вернула ошибку
	ErrFunctionFailed = errors.New("authservice client: function invocation failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
