package create_meeting

import (
	"errors"
	"net/http"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/middleware"
	createMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/create_meeting"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid meeting data"
)

type Handler struct {
	useCase CreateMeetingUseCase
	logger  Logger
}

func NewHandler(useCase CreateMeetingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/meetings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userUID := middleware.UserUID(r.Context())

	var req CreateMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /meetings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userUID))
	if err != nil {
		switch {
		case errors.Is(err, createMeeting.ErrInvalidInput):
			h.logger.Warn("POST /meetings - Invalid input: user=%s, error=%v", userUID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /meetings - Failed to create meeting: user=%s, error=%v", userUID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /meetings - Meeting created successfully: meeting_id=%d, user=%s",
		result.ID, userUID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
