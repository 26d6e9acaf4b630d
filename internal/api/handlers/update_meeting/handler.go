package update_meeting

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/middleware"
	updateMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/update_meeting"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidMeetingID   = "invalid meeting id"
	msgInvalidInput       = "invalid meeting data"
	msgMeetingNotFound    = "meeting not found"
	msgAccessDenied       = "access denied"
)

type Handler struct {
	useCase UpdateMeetingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateMeetingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/meetings/{meetingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userUID := middleware.UserUID(r.Context())

	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /meetings/{meetingId} - Invalid meeting id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	var req UpdateMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /meetings/%d - Invalid request body: %v", meetingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(meetingID, userUID))
	if err != nil {
		switch {
		case errors.Is(err, updateMeeting.ErrMeetingNotFound):
			h.logger.Warn("PUT /meetings/%d - Meeting not found", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		case errors.Is(err, updateMeeting.ErrAccessDenied):
			h.logger.Warn("PUT /meetings/%d - Access denied for user=%s", meetingID, userUID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, updateMeeting.ErrInvalidInput):
			h.logger.Warn("PUT /meetings/%d - Invalid input: %v", meetingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /meetings/%d - Failed to update meeting: user=%s, error=%v",
				meetingID, userUID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /meetings/%d - Meeting updated successfully: user=%s", meetingID, userUID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
