package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	SlotID        string  // id выбранного слота
	CustomerName  string  // обязательное поле
	CustomerEmail string  // обязательное поле
	CustomerPhone *string // опционально
	Notes         *string // опционально
}

// SideEffects результаты best-effort шагов после регистрации бронирования
// Каждый шаг независим: его неудача фиксируется, но не отменяет бронирование
// и не прерывает остальные шаги
type SideEffects struct {
	EmailSent       bool     // письма отправлены через серверную функцию
	CalendarSynced  bool     // событие вставлено во внешний календарь
	CalendarEventID *string  // id события календаря (если синхронизировано)
	Persisted       bool     // запись сохранена во внешнем хранилище
	Warnings        []string // человекочитаемые предупреждения по неудавшимся шагам
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string

	SlotID        string
	SlotDate      string
	SlotStartTime string
	SlotEndTime   string

	CreatedAt   time.Time
	SideEffects SideEffects
}
