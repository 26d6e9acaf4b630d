package get_booking_options

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	getBookingOptions "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/get_booking_options"
)

const (
	msgInvalidMeetingID = "invalid meeting id"
	msgMeetingNotFound  = "meeting not found"
)

type Handler struct {
	useCase GetBookingOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/meetings/{meetingId}/booking-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /meetings/{meetingId}/booking-options - Invalid meeting id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookingOptions.Request{MeetingID: meetingID})
	if err != nil {
		switch {
		case errors.Is(err, getBookingOptions.ErrMeetingNotFound):
			h.logger.Warn("GET /meetings/%d/booking-options - Meeting not found", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		default:
			h.logger.Error("GET /meetings/%d/booking-options - Failed to get booking options: %v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /meetings/%d/booking-options - Fetched %d bookable dates", meetingID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
