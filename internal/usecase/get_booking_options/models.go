package get_booking_options

// Request модель запроса на получение доступных слотов встречи
type Request struct {
	MeetingID int64
}

// Response модель ответа со слотами для страницы бронирования
// Dates в порядке генерации; CandidatesByDate уже за вычетом занятых
type Response struct {
	MeetingID        int64
	EventDuration    int
	Dates            []string
	CandidatesByDate map[string][]string
}
