package authservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в AuthService
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что AuthService недоступен и следует отдавать встречу без
	// данных владельца
	ErrServiceDegraded = errors.New("authservice unavailable: graceful degradation applied")
)
