package delete_meeting

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

// Handle DELETE /api/v1/meetings/{meetingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userUID := middleware.UserUID(r.Context())

	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /meetings/{meetingId} - Invalid meeting id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	if err := h.service.Delete(r.Context(), meetingID, userUID); err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrMeetingNotFound):
			h.logger.Warn("DELETE /meetings/%d - Meeting not found", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		case errors.Is(err, meetingsService.ErrAccessDenied):
			h.logger.Warn("DELETE /meetings/%d - Access denied for user=%s", meetingID, userUID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("DELETE /meetings/%d - Failed to delete meeting: user=%s, error=%v",
				meetingID, userUID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /meetings/%d - Meeting deleted successfully: user=%s", meetingID, userUID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
