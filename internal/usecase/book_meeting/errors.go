package book_meeting

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда встреча не найдена
	ErrMeetingNotFound = errors.New("book_meeting: meeting not found")

	// ErrEmailInvalid возвращается при некорректном email гостя или участника
	ErrEmailInvalid = errors.New("book_meeting: invalid email address")

	// ErrSlotUnavailable возвращается, когда выбранный слот уже занят
	// или не входит в доступное множество
	ErrSlotUnavailable = errors.New("book_meeting: slot is not available")

	// ErrNotificationFailed возвращается, когда бронь записана, но
	// письмо или календарное событие создать не удалось. Компенсации
	// нет: запись брони остаётся, повторная отправка — ручная операция
	ErrNotificationFailed = errors.New("book_meeting: booking recorded but notifications failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_meeting: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_meeting: internal error")
)
