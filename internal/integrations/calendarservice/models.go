package calendarservice

// CreateEventRequest запрос на создание календарного события
// StartDateTime/EndDateTime в формате RFC3339 со смещением таймзоны
type CreateEventRequest struct {
	Summary         string   `json:"summary"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	StartDateTime   string   `json:"start_date_time"`
	EndDateTime     string   `json:"end_date_time"`
	Attendees       []string `json:"attendees"`
	ReminderMinutes int      `json:"reminder_minutes"`
}

// CreateEventResponse ответ с идентификатором созданного события
type CreateEventResponse struct {
	EventID string `json:"event_id"`
}

// ErrorResponse модель ошибки от CalendarService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
