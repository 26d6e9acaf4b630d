package book_meeting

import (
	"strings"
	"time"

	bookMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/book_meeting"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

// BookMeetingRequest HTTP request model
// Формат полей зафиксирован клиентом страницы бронирования и не
// меняется: booked_date/booked_time в snake_case (booked_time может
// приходить как "HH:MM:SS"), guestEmails — полный список участников
// одной строкой через ", ". MeetingID из тела дублирует path-параметр;
// авторитетен path.
type BookMeetingRequest struct {
	MeetingID   int64  `json:"meetingId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	BookedDate  string `json:"booked_date"`
	BookedTime  string `json:"booked_time"`
	GuestEmails string `json:"guestEmails"`
}

// BookMeetingResponse HTTP response model
type BookMeetingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	MeetingID   int64  `json:"meetingId"`
	MeetingName string `json:"meetingName"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	BookedDate  string `json:"booked_date"`
	BookedTime  string `json:"booked_time"`
	GuestEmails string `json:"guestEmails,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
// Секунды в booked_time отбрасываются; значение, которое не удалось
// распарсить, передаётся как есть и отсекается валидацией use case
func (r *BookMeetingRequest) ToUseCaseRequest(meetingID int64) *bookMeeting.Request {
	bookedTime := types.TimeString(r.BookedTime)
	if ts, err := types.NewTimeStringFromString(r.BookedTime); err == nil {
		bookedTime = ts
	}

	var guests []string
	if trimmed := strings.TrimSpace(r.GuestEmails); trimmed != "" {
		guests = strings.Split(trimmed, ", ")
	}

	return &bookMeeting.Request{
		MeetingID:   meetingID,
		Name:        r.Name,
		Email:       r.Email,
		BookedDate:  types.DateString(r.BookedDate),
		BookedTime:  bookedTime,
		GuestEmails: guests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookMeeting.Response) *BookMeetingResponse {
	return &BookMeetingResponse{
		ID:          resp.ID,
		Reference:   resp.Reference,
		MeetingID:   resp.MeetingID,
		MeetingName: resp.MeetingName,
		Name:        resp.Name,
		Email:       resp.Email,
		BookedDate:  string(resp.BookedDate),
		BookedTime:  resp.BookedTime.String(),
		GuestEmails: strings.Join(resp.GuestEmails, ", "),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
