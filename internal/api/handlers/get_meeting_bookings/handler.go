package get_meeting_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/middleware"
	meetingsService "github.com/chungmangjie200/ZCal-MeetingService/internal/service/meetings"
)

const (
	msgInvalidMeetingID = "invalid meeting id"
	msgMeetingNotFound  = "meeting not found"
	msgAccessDenied     = "access denied"
)

type Handler struct {
	service MeetingsService
	logger  Logger
}

func NewHandler(service MeetingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/meetings/{meetingId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userUID := middleware.UserUID(r.Context())

	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /meetings/{meetingId}/bookings - Invalid meeting id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	result, err := h.service.GetBookings(r.Context(), meetingID, userUID)
	if err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrMeetingNotFound):
			h.logger.Warn("GET /meetings/%d/bookings - Meeting not found", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		case errors.Is(err, meetingsService.ErrAccessDenied):
			h.logger.Warn("GET /meetings/%d/bookings - Access denied for user=%s", meetingID, userUID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("GET /meetings/%d/bookings - Failed to get bookings: %v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /meetings/%d/bookings - Fetched %d bookings", meetingID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
