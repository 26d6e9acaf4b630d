package book_meeting

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	bookMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/book_meeting"
)

const (
	msgInvalidMeetingID   = "invalid meeting id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "invalid email address"
	msgInvalidInput       = "invalid booking data"
	msgMeetingNotFound    = "meeting not found"
	msgSlotUnavailable    = "selected slot is no longer available"
	msgNotificationFailed = "booking recorded but notifications failed"
)

type Handler struct {
	useCase BookMeetingUseCase
	logger  Logger
}

func NewHandler(useCase BookMeetingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/meetings/{meetingId}/bookings
// 502 означает, что бронь уже записана, но письмо или событие
// календаря не ушло; повторная отправка того же запроса создаст дубль
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /meetings/{meetingId}/bookings - Invalid meeting id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	var req BookMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /meetings/%d/bookings - Invalid request body: %v", meetingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(meetingID))
	if err != nil {
		switch {
		case errors.Is(err, bookMeeting.ErrEmailInvalid):
			h.logger.Warn("POST /meetings/%d/bookings - Invalid email: %v", meetingID, err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, bookMeeting.ErrInvalidInput):
			h.logger.Warn("POST /meetings/%d/bookings - Invalid booking data: %v", meetingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookMeeting.ErrMeetingNotFound):
			h.logger.Warn("POST /meetings/%d/bookings - Meeting not found", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		case errors.Is(err, bookMeeting.ErrSlotUnavailable):
			h.logger.Warn("POST /meetings/%d/bookings - Slot unavailable date=%s time=%s",
				meetingID, req.BookedDate, req.BookedTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, bookMeeting.ErrNotificationFailed):
			h.logger.Error("POST /meetings/%d/bookings - Notifications failed after booking: %v", meetingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgNotificationFailed)

		default:
			h.logger.Error("POST /meetings/%d/bookings - Failed to book meeting: %v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /meetings/%d/bookings - Booked slot date=%s time=%s reference=%s",
		meetingID, result.BookedDate, result.BookedTime, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
