package get_availability

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
)

// Request модель запроса на получение сессии редактирования доступности
// ReferenceDate подставляется хендлером (сегодняшняя дата сервера, либо
// явный query-параметр) — usecase часы не читает
type Request struct {
	MeetingID     int64
	UserUID       string    // UID владельца из сессии
	ReferenceDate time.Time // Точка отсчёта для дефолтных окон
}

// Response модель ответа с окнами по датам
// Synthesized=true означает, что расписание ещё не сохранялось и окна
// сгенерированы по умолчанию
type Response struct {
	MeetingID   int64
	Entries     []availability.DateEntry
	Synthesized bool
}
