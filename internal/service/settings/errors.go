package settings

import "errors"

var (
	// ErrAccessDenied возвращается, когда операция доступна только владельцу
	ErrAccessDenied = errors.New("settings: access denied")

	// ErrInvalidInput возвращается при некорректных данных настроек
	ErrInvalidInput = errors.New("settings: invalid input data")
)
