package slots

import "errors"

var (
	// ErrSlotUnavailable возвращается, когда выбранная гостем пара
	// дата/время отсутствует в актуальном множестве доступных слотов
	ErrSlotUnavailable = errors.New("slots: selected slot is unavailable")
)
