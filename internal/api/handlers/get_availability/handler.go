package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/middleware"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	getAvailability "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/get_availability"
)

const (
	msgInvalidMeetingID     = "invalid meeting id"
	msgInvalidReferenceDate = "invalid reference_date, expected YYYY-MM-DD"
	msgMeetingNotFound      = "meeting not found"
	msgAccessDenied         = "access denied"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/meetings/{meetingId}/availability?reference_date=YYYY-MM-DD
// reference_date нужен тестам и отладке; по умолчанию берется
// сегодняшняя дата сервера — единственное место, где читаются часы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userUID := middleware.UserUID(r.Context())

	meetingID, err := strconv.ParseInt(mux.Vars(r)["meetingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /meetings/{meetingId}/availability - Invalid meeting id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	referenceDate := time.Now()
	if raw := r.URL.Query().Get("reference_date"); raw != "" {
		referenceDate, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /meetings/%d/availability - Invalid reference_date %q: %v", meetingID, raw, err)
			handlers.RespondBadRequest(w, msgInvalidReferenceDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		MeetingID:     meetingID,
		UserUID:       userUID,
		ReferenceDate: referenceDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMeetingNotFound):
			h.logger.Warn("GET /meetings/%d/availability - Meeting not found", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		case errors.Is(err, getAvailability.ErrAccessDenied):
			h.logger.Warn("GET /meetings/%d/availability - Access denied for user=%s", meetingID, userUID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("GET /meetings/%d/availability - Failed to get availability: %v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /meetings/%d/availability - Fetched %d entries (synthesized=%t)",
		meetingID, len(result.Entries), result.Synthesized)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
