package book_meeting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/authservice"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/calendarservice"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/mailservice"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/ptr"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

// Фейки зависимостей: фиксируют порядок вызовов в общем журнале,
// чтобы проверять последовательность побочных эффектов

type fakeEnv struct {
	calls []string

	meeting      *domain.Meeting
	windows      []domain.AvailabilitySlot
	booked       []domain.GuestMeeting
	createErr    error
	emailErr     error
	calendarErr  error
	lastEmail    mailservice.SendEmailRequest
	lastEvent    calendarservice.CreateEventRequest
	lastInserted *domain.GuestMeeting
}

type fakeMeetingRepo struct{ env *fakeEnv }

func (f *fakeMeetingRepo) GetByID(ctx context.Context, id int64) (*domain.Meeting, error) {
	f.env.calls = append(f.env.calls, "meeting.GetByID")
	return f.env.meeting, nil
}

type fakeAvailabilityRepo struct{ env *fakeEnv }

func (f *fakeAvailabilityRepo) GetByMeetingID(ctx context.Context, meetingID int64) ([]domain.AvailabilitySlot, error) {
	f.env.calls = append(f.env.calls, "availability.GetByMeetingID")
	return f.env.windows, nil
}

type fakeBookingRepo struct{ env *fakeEnv }

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.GuestMeeting) (*domain.GuestMeeting, error) {
	f.env.calls = append(f.env.calls, "booking.Create")
	if f.env.createErr != nil {
		return nil, f.env.createErr
	}
	booking.ID = 42
	f.env.lastInserted = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByMeetingAndDate(ctx context.Context, meetingID int64, date types.DateString) ([]domain.GuestMeeting, error) {
	f.env.calls = append(f.env.calls, "booking.GetByMeetingAndDate")
	return f.env.booked, nil
}

type staticAuthClient struct{}

func (staticAuthClient) GetUserWithGracefulDegradation(ctx context.Context, uid string) (*authservice.UserProfile, error) {
	return &authservice.UserProfile{UID: uid, Name: "Owner"}, nil
}

type fakeTxManager struct{ env *fakeEnv }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.env.calls = append(f.env.calls, "tx.begin")
	err := fn(ctx)
	if err != nil {
		f.env.calls = append(f.env.calls, "tx.rollback")
		return err
	}
	f.env.calls = append(f.env.calls, "tx.commit")
	return nil
}

type fakeMailClient struct{ env *fakeEnv }

func (f *fakeMailClient) SendEmail(ctx context.Context, request mailservice.SendEmailRequest) error {
	f.env.calls = append(f.env.calls, "mail.SendEmail")
	f.env.lastEmail = request
	return f.env.emailErr
}

type fakeCalendarClient struct{ env *fakeEnv }

func (f *fakeCalendarClient) CreateEvent(ctx context.Context, request calendarservice.CreateEventRequest) (*calendarservice.CreateEventResponse, error) {
	f.env.calls = append(f.env.calls, "calendar.CreateEvent")
	f.env.lastEvent = request
	if f.env.calendarErr != nil {
		return nil, f.env.calendarErr
	}
	return &calendarservice.CreateEventResponse{EventID: "evt-1"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestEnv() *fakeEnv {
	start := types.TimeString("09:00")
	end := types.TimeString("10:00")
	return &fakeEnv{
		meeting: &domain.Meeting{
			ID:            1,
			MeetingName:   "Intro Call",
			Location:      domain.LocationZoom,
			CustomURL:     "https://zoom.example.com/room",
			EventDuration: 30,
			ReminderDays:  30,
			UserUID:       "owner-uid",
		},
		windows: []domain.AvailabilitySlot{{
			ID:        ptr.Ptr(int64(1)),
			MeetingID: 1,
			Date:      "2023-08-23",
			StartTime: &start,
			EndTime:   &end,
		}},
	}
}

func newTestUseCase(env *fakeEnv) *UseCase {
	uc := NewUseCase(
		&fakeMeetingRepo{env},
		&fakeAvailabilityRepo{env},
		&fakeBookingRepo{env},
		staticAuthClient{},
		&fakeMailClient{env},
		&fakeCalendarClient{env},
		&fakeTxManager{env},
		nopLogger{},
	)
	uc.refGenerator = staticRef("ref-1")
	return uc
}

type staticRef string

func (s staticRef) NewReference() string { return string(s) }

func TestBookMeetingHappyPath(t *testing.T) {
	env := newTestEnv()
	uc := newTestUseCase(env)

	// Клиент шлёт полный список участников: основной гость первым
	resp, err := uc.Execute(context.Background(), &Request{
		MeetingID:   1,
		Name:        "Alice",
		Email:       "alice@example.com",
		BookedDate:  "2023-08-23",
		BookedTime:  "09:30",
		GuestEmails: []string{"alice@example.com", "bob@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "ref-1", resp.Reference)
	assert.Equal(t, "Intro Call", resp.MeetingName)

	// бронь пишется внутри транзакции; письмо и календарь после коммита,
	// строго в этом порядке
	assert.Equal(t, []string{
		"meeting.GetByID",
		"tx.begin",
		"availability.GetByMeetingID",
		"booking.GetByMeetingAndDate",
		"booking.Create",
		"tx.commit",
		"mail.SendEmail",
		"calendar.CreateEvent",
	}, env.calls)

	require.NotNil(t, env.lastInserted)
	assert.Equal(t, "alice@example.com, bob@example.com", env.lastInserted.GuestEmails)

	// письмо уходит всему списку участников, не только основному гостю
	assert.Equal(t, "alice@example.com, bob@example.com", env.lastEmail.To)
	assert.Equal(t, "Appointment Confirmation - Intro Call", env.lastEmail.Subject)
	assert.Contains(t, env.lastEmail.HTML, "30 min")
	assert.Contains(t, env.lastEmail.HTML, "alice@example.com, bob@example.com")

	// событие в фиксированной таймзоне +08:00
	assert.Equal(t, "2023-08-23T09:30:00+08:00", env.lastEvent.StartDateTime)
	assert.Equal(t, "2023-08-23T10:00:00+08:00", env.lastEvent.EndDateTime)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, env.lastEvent.Attendees)
	assert.Equal(t, "https://zoom.example.com/room", env.lastEvent.Location)
}

func TestBookMeetingWithoutAttendeeList(t *testing.T) {
	env := newTestEnv()
	uc := newTestUseCase(env)

	// Без списка участников единственным получателем остаётся сам гость
	_, err := uc.Execute(context.Background(), &Request{
		MeetingID:  1,
		Name:       "Alice",
		Email:      "alice@example.com",
		BookedDate: "2023-08-23",
		BookedTime: "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", env.lastEmail.To)
	assert.Equal(t, "alice@example.com", env.lastInserted.GuestEmails)
	assert.Equal(t, []string{"alice@example.com"}, env.lastEvent.Attendees)
}

func TestBookMeetingSlotTaken(t *testing.T) {
	env := newTestEnv()
	env.booked = []domain.GuestMeeting{{
		MeetingID:  1,
		BookedDate: "2023-08-23",
		BookedTime: "09:30:00",
	}}
	uc := newTestUseCase(env)

	_, err := uc.Execute(context.Background(), &Request{
		MeetingID:  1,
		Name:       "Alice",
		Email:      "alice@example.com",
		BookedDate: "2023-08-23",
		BookedTime: "09:30",
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	// транзакция откатилась, побочные эффекты не запускались
	assert.NotContains(t, env.calls, "mail.SendEmail")
	assert.NotContains(t, env.calls, "calendar.CreateEvent")
	assert.Contains(t, env.calls, "tx.rollback")
}

func TestBookMeetingTimeOutsideCandidates(t *testing.T) {
	env := newTestEnv()
	uc := newTestUseCase(env)

	// 09:15 не кратно шагу длительности от начала окна
	_, err := uc.Execute(context.Background(), &Request{
		MeetingID:  1,
		Name:       "Alice",
		Email:      "alice@example.com",
		BookedDate: "2023-08-23",
		BookedTime: "09:15",
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBookMeetingEmailFailureAbortsCalendar(t *testing.T) {
	env := newTestEnv()
	env.emailErr = errors.New("smtp down")
	uc := newTestUseCase(env)

	_, err := uc.Execute(context.Background(), &Request{
		MeetingID:  1,
		Name:       "Alice",
		Email:      "alice@example.com",
		BookedDate: "2023-08-23",
		BookedTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrNotificationFailed)
	// бронь уже записана, календарь не вызывался
	assert.Contains(t, env.calls, "booking.Create")
	assert.Contains(t, env.calls, "tx.commit")
	assert.NotContains(t, env.calls, "calendar.CreateEvent")
}

func TestBookMeetingCalendarFailureSurfaced(t *testing.T) {
	env := newTestEnv()
	env.calendarErr = errors.New("calendar api down")
	uc := newTestUseCase(env)

	_, err := uc.Execute(context.Background(), &Request{
		MeetingID:  1,
		Name:       "Alice",
		Email:      "alice@example.com",
		BookedDate: "2023-08-23",
		BookedTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.Contains(t, env.calls, "mail.SendEmail")
	assert.Contains(t, env.calls, "calendar.CreateEvent")
}
