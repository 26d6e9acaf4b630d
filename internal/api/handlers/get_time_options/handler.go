package get_time_options

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
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

// Handle GET /api/v1/meetings/{meetingId}/time-options
// Списки строятся от шага конкретной встречи, поэтому сначала
// поднимается сама встреча
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /meetings/{meetingId}/time-options - Invalid meeting id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	meeting, err := h.service.GetByID(r.Context(), meetingID)
	if err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrMeetingNotFound):
			h.logger.Warn("GET /meetings/%d/time-options - Meeting not found", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		default:
			h.logger.Error("GET /meetings/%d/time-options - Failed to get meeting: %v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result := &TimeOptionsResponse{
		MeetingID:        meetingID,
		Increment:        meeting.TimeSlotIncrement,
		StartTimeOptions: availability.GenerateTimeOptions(meeting.TimeSlotIncrement),
		EndTimeOptions:   availability.EndTimeOptions(meeting.TimeSlotIncrement),
	}

	h.logger.Info("GET /meetings/%d/time-options - Generated %d options with increment=%d",
		meetingID, len(result.StartTimeOptions), meeting.TimeSlotIncrement)
	handlers.RespondJSON(w, http.StatusOK, result)
}
