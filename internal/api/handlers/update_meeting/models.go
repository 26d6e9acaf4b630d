package update_meeting

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	updateMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/update_meeting"
)

// UpdateMeetingRequest HTTP request model
// Availability == nil означает "расписание не трогать": форма настроек
// шлёт только поля встречи, форма доступности — окна целиком
type UpdateMeetingRequest struct {
	MeetingName       string                    `json:"meetingName"`
	Location          string                    `json:"location"`
	Description       string                    `json:"description,omitempty"`
	CustomURL         string                    `json:"customUrl,omitempty"`
	CoverPhoto        string                    `json:"coverPhoto,omitempty"`
	EventDuration     int                       `json:"eventDuration"`
	TimeSlotIncrement int                       `json:"timeSlotIncrement"`
	DateRange         int                       `json:"dateRange"`
	ReminderDays      int                       `json:"reminderDays"`
	Availability      *[]availability.DateEntry `json:"availability,omitempty"`
}

// UpdateMeetingResponse HTTP response model
type UpdateMeetingResponse struct {
	ID        int64  `json:"id"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateMeetingRequest) ToUseCaseRequest(meetingID int64, userUID string) *updateMeeting.Request {
	req := &updateMeeting.Request{
		MeetingID:         meetingID,
		UserUID:           userUID,
		MeetingName:       r.MeetingName,
		Location:          r.Location,
		Description:       r.Description,
		CustomURL:         r.CustomURL,
		CoverPhoto:        r.CoverPhoto,
		EventDuration:     r.EventDuration,
		TimeSlotIncrement: r.TimeSlotIncrement,
		DateRange:         r.DateRange,
		ReminderDays:      r.ReminderDays,
	}
	if r.Availability != nil {
		req.ReplaceEntries = true
		req.Entries = *r.Availability
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateMeeting.Response) *UpdateMeetingResponse {
	return &UpdateMeetingResponse{
		ID:        resp.ID,
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
