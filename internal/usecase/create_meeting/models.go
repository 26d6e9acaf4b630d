package create_meeting

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
)

// Request модель запроса на создание встречи
// Entries опциональны: пустой список означает, что владелец настроит
// расписание позже через отдельную форму доступности
type Request struct {
	MeetingName       string                   // Название встречи
	Location          string                   // Место проведения (zoom / google_meet / phone)
	Description       string                   // Описание
	CustomURL         string                   // Ссылка на конкретную комнату / номер телефона
	CoverPhoto        string                   // URL обложки во внешнем объектном хранилище
	EventDuration     int                      // Длительность в минутах (15/30/60/120/180)
	TimeSlotIncrement int                      // Шаг виджетов выбора времени (15/30/60)
	DateRange         int                      // Горизонт бронирования в днях (3/7/30)
	ReminderDays      int                      // Напоминание в минутах до начала
	UserUID           string                   // UID владельца
	Entries           []availability.DateEntry // Окна доступности из сессии редактирования
}

// Response модель ответа с созданной встречей
type Response struct {
	ID        int64     // ID созданной встречи
	CreatedAt time.Time // Время создания
}
