package get_availability

import (
	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	getAvailability "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	MeetingID    int64                    `json:"meetingId"`
	Availability []availability.DateEntry `json:"availability"`
	Synthesized  bool                     `json:"synthesized"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		MeetingID:    resp.MeetingID,
		Availability: resp.Entries,
		Synthesized:  resp.Synthesized,
	}
}
