package get_availability

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда встреча не найдена
	ErrMeetingNotFound = errors.New("get_availability: meeting not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет встречей
	ErrAccessDenied = errors.New("get_availability: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
