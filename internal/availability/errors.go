package availability

import "errors"

var (
	// ErrInvalidOrdering возвращается, когда предлагаемое время начала
	// не строго раньше текущего времени конца того же окна
	ErrInvalidOrdering = errors.New("availability: start time must be before end time")
)
