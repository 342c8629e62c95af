package googlecalendar

import "errors"

var (
	// ErrSyncFailed возвращается, когда вставка события в календарь не удалась
	ErrSyncFailed = errors.New("googlecalendar client: failed to insert event")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
