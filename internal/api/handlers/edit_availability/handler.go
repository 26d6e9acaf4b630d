package edit_availability

import (
	"errors"
	"net/http"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	editAvailability "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/edit_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid edit target"
	msgInvalidOrdering    = "start time must be before end time"
)

type Handler struct {
	useCase EditAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase EditAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/edit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EditAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/edit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, editAvailability.ErrInvalidOrdering):
			h.logger.Warn("POST /availability/edit - Rejected edit date=%d slot=%d field=%s: %v",
				req.DateIdx, req.SlotIdx, req.Field, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidOrdering)

		case errors.Is(err, editAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/edit - Invalid edit target date=%d slot=%d field=%s",
				req.DateIdx, req.SlotIdx, req.Field)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/edit - Failed to apply edit: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/edit - Applied edit date=%d slot=%d field=%s",
		req.DateIdx, req.SlotIdx, req.Field)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
