package book_meeting

import (
	"fmt"
	"strings"
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/calendarservice"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/mailservice"
)

// buildConfirmationEmail собирает письмо-подтверждение.
// Получатели — весь список участников, а не только основной гость.
// Подпись владельца пустая, если AuthService был недоступен.
func buildConfirmationEmail(meeting *domain.Meeting, req *Request, attendees []string, ownerName string) mailservice.SendEmailRequest {
	recipients := strings.Join(attendees, ", ")

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<p>Hi %s,</p>", req.Name))
	body.WriteString(fmt.Sprintf("<p>Your appointment <b>%s</b> is confirmed.</p>", meeting.MeetingName))
	body.WriteString("<ul>")
	body.WriteString(fmt.Sprintf("<li>Attendees: %s</li>", recipients))
	body.WriteString(fmt.Sprintf("<li>Date: %s</li>", req.BookedDate))
	body.WriteString(fmt.Sprintf("<li>Time: %s</li>", req.BookedTime))
	body.WriteString(fmt.Sprintf("<li>Duration: %s</li>", meeting.DurationLabel()))
	body.WriteString(fmt.Sprintf("<li>Location: %s</li>", locationLabel(meeting.Location)))
	if meeting.CustomURL != "" {
		body.WriteString(fmt.Sprintf("<li>Link: <a href=%q>%s</a></li>", meeting.CustomURL, meeting.CustomURL))
	}
	body.WriteString("</ul>")
	if ownerName != "" {
		body.WriteString(fmt.Sprintf("<p>Best regards,<br>%s</p>", ownerName))
	}

	return mailservice.SendEmailRequest{
		To:      recipients,
		Subject: "Appointment Confirmation - " + meeting.MeetingName,
		HTML:    body.String(),
	}
}

// buildCalendarEvent собирает календарное событие брони.
// Таймзона фиксированная (+08:00) для всех событий независимо от
// гостя — расширение до мультизонной модели отдельное продуктовое
// решение.
func buildCalendarEvent(meeting *domain.Meeting, req *Request, attendees []string, start time.Time) calendarservice.CreateEventRequest {
	end := start.Add(time.Duration(meeting.EventDuration) * time.Minute)

	return calendarservice.CreateEventRequest{
		Summary:         fmt.Sprintf("%s with %s", meeting.MeetingName, req.Name),
		Description:     meeting.Description,
		Location:        meeting.CustomURL,
		StartDateTime:   start.Format(time.RFC3339),
		EndDateTime:     end.Format(time.RFC3339),
		Attendees:       attendees,
		ReminderMinutes: meeting.ReminderDays,
	}
}

// eventStart строит момент начала брони в фиксированной таймзоне
func eventStart(req *Request) (time.Time, error) {
	day, err := req.BookedDate.Time()
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := req.BookedTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}

	zone := time.FixedZone("UTC+8", domain.CalendarTimezoneOffsetSeconds)
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, zone), nil
}

func locationLabel(location domain.MeetingLocation) string {
	switch location {
	case domain.LocationZoom:
		return "Zoom"
	case domain.LocationGoogleMeet:
		return "Google Meet"
	case domain.LocationPhone:
		return "Phone call"
	default:
		return string(location)
	}
}
