package get_user_meetings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/middleware"
)

const msgAccessDenied = "access denied"

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

// Handle GET /api/v1/users/{userUid}/meetings
// Владелец видит только собственный список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionUID := middleware.UserUID(r.Context())
	pathUID := mux.Vars(r)["userUid"]

	if pathUID != sessionUID {
		h.logger.Warn("GET /users/%s/meetings - Access denied for user=%s", pathUID, sessionUID)
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	result, err := h.service.GetUserMeetings(r.Context(), sessionUID)
	if err != nil {
		h.logger.Error("GET /users/%s/meetings - Failed to get meetings: %v", sessionUID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/%s/meetings - Fetched %d meetings", sessionUID, len(result.Meetings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
