package book_meeting

import (
	"fmt"
	"regexp"
)

// Однобуквенные TLD отклоняются: минимум две буквы после последней точки
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// validateRequest проверяет входные данные запроса
// Некорректный адрес в списке участников отклоняет весь запрос:
// частично разосланное приглашение хуже, чем ошибка валидации
func validateRequest(req *Request) error {
	if req.MeetingID <= 0 {
		return fmt.Errorf("%w: meeting id is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: %q", ErrEmailInvalid, req.Email)
	}
	for _, email := range req.GuestEmails {
		if !emailPattern.MatchString(email) {
			return fmt.Errorf("%w: %q", ErrEmailInvalid, email)
		}
	}
	if err := req.BookedDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid booked date: %v", ErrInvalidInput, err)
	}
	if err := req.BookedTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid booked time: %v", ErrInvalidInput, err)
	}
	return nil
}
