package update_meeting

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
)

// Request модель запроса на обновление встречи
// ReplaceEntries указывает, нужно ли перезаписывать расписание: форма
// настроек встречи шлёт только поля встречи, форма доступности — окна
type Request struct {
	MeetingID         int64
	UserUID           string // UID владельца из сессии
	MeetingName       string
	Location          string
	Description       string
	CustomURL         string
	CoverPhoto        string
	EventDuration     int
	TimeSlotIncrement int
	DateRange         int
	ReminderDays      int
	ReplaceEntries    bool
	Entries           []availability.DateEntry
}

// Response модель ответа с обновлённой встречей
type Response struct {
	ID        int64
	UpdatedAt time.Time
}
