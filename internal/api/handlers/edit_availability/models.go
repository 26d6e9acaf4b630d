package edit_availability

import (
	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	editAvailability "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/edit_availability"
)

// EditAvailabilityRequest HTTP request model
type EditAvailabilityRequest struct {
	Entries []availability.DateEntry `json:"entries"`
	DateIdx int                      `json:"dateIdx"`
	SlotIdx int                      `json:"slotIdx"`
	Field   string                   `json:"field"`
	Value   string                   `json:"value"`
}

// EditAvailabilityResponse HTTP response model
type EditAvailabilityResponse struct {
	Entries []availability.DateEntry `json:"entries"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *EditAvailabilityRequest) ToUseCaseRequest() *editAvailability.Request {
	return &editAvailability.Request{
		Entries: r.Entries,
		DateIdx: r.DateIdx,
		SlotIdx: r.SlotIdx,
		Field:   r.Field,
		Value:   r.Value,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editAvailability.Response) *EditAvailabilityResponse {
	return &EditAvailabilityResponse{Entries: resp.Entries}
}
