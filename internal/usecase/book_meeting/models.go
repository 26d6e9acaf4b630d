package book_meeting

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

// Request модель запроса на бронирование слота гостем
type Request struct {
	MeetingID   int64            // ID встречи
	Name        string           // Имя гостя
	Email       string           // Email гостя
	BookedDate  types.DateString // Выбранная дата
	BookedTime  types.TimeString // Выбранное время начала
	GuestEmails []string         // Полный список участников (основной гость первым)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID          int64
	Reference   string // Публичный идентификатор для страницы подтверждения
	MeetingID   int64
	MeetingName string
	Name        string
	Email       string
	BookedDate  types.DateString
	BookedTime  types.TimeString
	GuestEmails []string
	CreatedAt   time.Time
}
