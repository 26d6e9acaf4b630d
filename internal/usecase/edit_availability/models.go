package edit_availability

import "github.com/chungmangjie200/ZCal-MeetingService/internal/availability"

// Request модель запроса на правку одного поля окна в сессии
// редактирования. Состояние сессии живёт на клиенте и передаётся
// целиком; сервер возвращает новую копию, ничего не сохраняя.
type Request struct {
	Entries []availability.DateEntry // Текущее состояние сессии
	DateIdx int                      // Индекс редактируемой даты
	SlotIdx int                      // Индекс окна внутри даты
	Field   string                   // start_time / end_time / repeats
	Value   string                   // Новое значение поля
}

// Response модель ответа с новым состоянием сессии
type Response struct {
	Entries []availability.DateEntry
}
