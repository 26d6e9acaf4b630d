package update_meeting

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда встреча не найдена
	ErrMeetingNotFound = errors.New("update_meeting: meeting not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет встречей
	ErrAccessDenied = errors.New("update_meeting: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_meeting: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_meeting: internal error")
)
