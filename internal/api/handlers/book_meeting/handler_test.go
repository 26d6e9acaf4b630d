package book_meeting

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/book_meeting"
)

type fakeUseCase struct {
	lastReq *bookMeeting.Request
	resp    *bookMeeting.Response
	err     error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *bookMeeting.Request) (*bookMeeting.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postBooking(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/meetings/{meetingId}/bookings", NewHandler(uc, nopLogger{}).Handle).
		Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/meetings/7/bookings", strings.NewReader(body))
	r.ServeHTTP(rec, req)
	return rec
}

// Тело запроса в точности как его шлёт страница бронирования:
// meetingId в теле, даты в snake_case, время с секундами, участники
// одной строкой
func TestBookMeetingHandlerDecodesClientPayload(t *testing.T) {
	uc := &fakeUseCase{
		resp: &bookMeeting.Response{
			ID:          42,
			Reference:   "ref-1",
			MeetingID:   7,
			MeetingName: "Intro Call",
			Name:        "Alice",
			Email:       "alice@example.com",
			BookedDate:  "2023-08-23",
			BookedTime:  "09:00",
			GuestEmails: []string{"alice@example.com", "bob@example.com"},
			CreatedAt:   time.Date(2023, 8, 20, 12, 0, 0, 0, time.UTC),
		},
	}

	rec := postBooking(t, uc, `{
		"meetingId": 7,
		"name": "Alice",
		"email": "alice@example.com",
		"booked_date": "2023-08-23",
		"booked_time": "09:00:00",
		"guestEmails": "alice@example.com, bob@example.com"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(7), uc.lastReq.MeetingID)
	assert.Equal(t, "2023-08-23", string(uc.lastReq.BookedDate))
	// секунды отброшены
	assert.Equal(t, "09:00", string(uc.lastReq.BookedTime))
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, uc.lastReq.GuestEmails)

	// ответ держит тот же формат полей, что и запрос
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "2023-08-23", payload["booked_date"])
	assert.Equal(t, "09:00", payload["booked_time"])
	assert.Equal(t, "alice@example.com, bob@example.com", payload["guestEmails"])
}

func TestBookMeetingHandlerEmptyGuestList(t *testing.T) {
	uc := &fakeUseCase{
		resp: &bookMeeting.Response{
			ID:         1,
			MeetingID:  7,
			BookedDate: "2023-08-23",
			BookedTime: "09:00",
		},
	}

	rec := postBooking(t, uc, `{
		"name": "Alice",
		"email": "alice@example.com",
		"booked_date": "2023-08-23",
		"booked_time": "09:00:00",
		"guestEmails": ""
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Nil(t, uc.lastReq.GuestEmails)
}

func TestBookMeetingHandlerSlotUnavailable(t *testing.T) {
	uc := &fakeUseCase{err: bookMeeting.ErrSlotUnavailable}

	rec := postBooking(t, uc, `{
		"name": "Alice",
		"email": "alice@example.com",
		"booked_date": "2023-08-23",
		"booked_time": "09:00:00",
		"guestEmails": "alice@example.com"
	}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
