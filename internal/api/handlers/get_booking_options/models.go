package get_booking_options

import (
	getBookingOptions "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/get_booking_options"
)

// BookingOptionsResponse HTTP response model
type BookingOptionsResponse struct {
	MeetingID        int64               `json:"meetingId"`
	EventDuration    int                 `json:"eventDuration"`
	Dates            []string            `json:"dates"`
	CandidatesByDate map[string][]string `json:"candidatesByDate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingOptions.Response) *BookingOptionsResponse {
	return &BookingOptionsResponse{
		MeetingID:        resp.MeetingID,
		EventDuration:    resp.EventDuration,
		Dates:            resp.Dates,
		CandidatesByDate: resp.CandidatesByDate,
	}
}
