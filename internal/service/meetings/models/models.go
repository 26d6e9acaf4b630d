package models

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
)

// Response модели

// MeetingResponse встреча с денормализованным профилем владельца
// UserName/ProfilePicture пустые при недоступности AuthService
type MeetingResponse struct {
	ID                int64                    `json:"id"`
	MeetingName       string                   `json:"meetingName"`
	Location          string                   `json:"location"`
	Description       string                   `json:"description"`
	CustomURL         string                   `json:"customUrl"`
	CoverPhoto        string                   `json:"coverPhoto"`
	EventDuration     int                      `json:"eventDuration"`
	TimeSlotIncrement int                      `json:"timeSlotIncrement"`
	DateRange         int                      `json:"dateRange"`
	ReminderDays      int                      `json:"reminderDays"`
	UserUID           string                   `json:"userUid"`
	UserName          string                   `json:"userName,omitempty"`
	ProfilePicture    string                   `json:"profilePicture,omitempty"`
	Availability      []availability.DateEntry `json:"availability,omitempty"`
	CreatedAt         string                   `json:"createdAt"`
	UpdatedAt         string                   `json:"updatedAt"`
}

// MeetingListResponse список встреч владельца
type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

// BookingResponse одна бронь гостя
type BookingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	MeetingID   int64  `json:"meetingId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	BookedDate  string `json:"bookedDate"`
	BookedTime  string `json:"bookedTime"`
	GuestEmails string `json:"guestEmails,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// BookingListResponse список броней встречи
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainMeeting конвертирует domain встречу в response
func FromDomainMeeting(m *domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:                m.ID,
		MeetingName:       m.MeetingName,
		Location:          string(m.Location),
		Description:       m.Description,
		CustomURL:         m.CustomURL,
		CoverPhoto:        m.CoverPhoto,
		EventDuration:     m.EventDuration,
		TimeSlotIncrement: m.TimeSlotIncrement,
		DateRange:         m.DateRange,
		ReminderDays:      m.ReminderDays,
		UserUID:           m.UserUID,
		CreatedAt:         m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         m.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainMeetingList конвертирует список встреч в response
func FromDomainMeetingList(meetings []*domain.Meeting) *MeetingListResponse {
	result := &MeetingListResponse{
		Meetings: make([]MeetingResponse, 0, len(meetings)),
	}
	for _, m := range meetings {
		result.Meetings = append(result.Meetings, FromDomainMeeting(m))
	}
	return result
}

// FromDomainBooking конвертирует domain бронь в response
func FromDomainBooking(b domain.GuestMeeting) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		MeetingID:   b.MeetingID,
		Name:        b.Name,
		Email:       b.Email,
		BookedDate:  string(b.BookedDate),
		BookedTime:  b.BookedTime.String(),
		GuestEmails: b.GuestEmails,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список броней в response
func FromDomainBookingList(bookings []domain.GuestMeeting) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, FromDomainBooking(b))
	}
	return result
}
