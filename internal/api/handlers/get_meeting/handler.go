package get_meeting

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	meetingsService "github.com/chungmangjie200/ZCal-MeetingService/internal/service/meetings"
)

const (
	msgInvalidMeetingID = "invalid meeting id"
	msgMeetingNotFound  = "meeting not found"
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

// Handle GET /api/v1/meetings/{meetingId}
// Публичный роут: страница бронирования гостя строится из этого ответа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /meetings/{meetingId} - Invalid meeting id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), meetingID)
	if err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrMeetingNotFound):
			h.logger.Warn("GET /meetings/%d - Meeting not found", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		default:
			h.logger.Error("GET /meetings/%d - Failed to get meeting: %v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /meetings/%d - Meeting fetched successfully", meetingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
