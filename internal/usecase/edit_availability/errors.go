package edit_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных индексах или поле
	ErrInvalidInput = errors.New("edit_availability: invalid input data")

	// ErrInvalidOrdering возвращается, когда правка нарушает порядок
	// начала и конца окна; клиент обязан оставить прежнее значение
	ErrInvalidOrdering = errors.New("edit_availability: start time must be before end time")
)
