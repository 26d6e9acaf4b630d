package create_meeting

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	createMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/create_meeting"
)

// CreateMeetingRequest HTTP request model
type CreateMeetingRequest struct {
	MeetingName       string                   `json:"meetingName"`
	Location          string                   `json:"location"`
	Description       string                   `json:"description,omitempty"`
	CustomURL         string                   `json:"customUrl,omitempty"`
	CoverPhoto        string                   `json:"coverPhoto,omitempty"`
	EventDuration     int                      `json:"eventDuration"`
	TimeSlotIncrement int                      `json:"timeSlotIncrement"`
	DateRange         int                      `json:"dateRange"`
	ReminderDays      int                      `json:"reminderDays"`
	Availability      []availability.DateEntry `json:"availability,omitempty"`
}

// CreateMeetingResponse HTTP response model
type CreateMeetingResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// UserUID приходит из Auth middleware, не из тела запроса
func (r *CreateMeetingRequest) ToUseCaseRequest(userUID string) *createMeeting.Request {
	return &createMeeting.Request{
		MeetingName:       r.MeetingName,
		Location:          r.Location,
		Description:       r.Description,
		CustomURL:         r.CustomURL,
		CoverPhoto:        r.CoverPhoto,
		EventDuration:     r.EventDuration,
		TimeSlotIncrement: r.TimeSlotIncrement,
		DateRange:         r.DateRange,
		ReminderDays:      r.ReminderDays,
		UserUID:           userUID,
		Entries:           r.Availability,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createMeeting.Response) *CreateMeetingResponse {
	return &CreateMeetingResponse{
		ID:        resp.ID,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
