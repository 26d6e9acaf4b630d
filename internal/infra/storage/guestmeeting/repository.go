package guestmeeting

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/dbmetrics"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/psqlbuilder"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

const bookingColumns = "id, reference, meeting_id, name, email, booked_date, booked_time, guest_emails, created_at"

// Repository репозиторий для работы с бронями гостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь
// Вызывается только внутри сериализуемой транзакции после повторной
// проверки доступности слота (защита от race condition между гостями)
func (r *Repository) Create(ctx context.Context, booking *domain.GuestMeeting) (*domain.GuestMeeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guest_meetings").
		Columns(
			"reference",
			"meeting_id",
			"name",
			"email",
			"booked_date",
			"booked_time",
			"guest_emails",
		).
		Values(
			booking.Reference,
			booking.MeetingID,
			booking.Name,
			booking.Email,
			booking.BookedDate,
			booking.BookedTime,
			booking.GuestEmails,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByMeetingID получает все брони встречи, по дате и времени
func (r *Repository) GetByMeetingID(ctx context.Context, meetingID int64) ([]domain.GuestMeeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("guest_meetings").
		Where(squirrel.Eq{"meeting_id": meetingID}).
		OrderBy("booked_date ASC, booked_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMeetingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMeetingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "GetByMeetingID")
}

// GetByMeetingAndDate получает брони встречи на конкретную дату
// Внутри транзакции добавляет FOR UPDATE: usecase бронирования
// блокирует строки даты, чтобы два гостя не заняли один слот
func (r *Repository) GetByMeetingAndDate(ctx context.Context, meetingID int64, date types.DateString) ([]domain.GuestMeeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("guest_meetings").
		Where(squirrel.Eq{"meeting_id": meetingID}).
		Where(squirrel.Eq{"booked_date": date}).
		OrderBy("booked_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMeetingAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMeetingAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "GetByMeetingAndDate")
}

// DeleteByMeetingID удаляет все брони встречи
// Используется при каскадном удалении встречи
func (r *Repository) DeleteByMeetingID(ctx context.Context, meetingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guest_meetings").
		Where(squirrel.Eq{"meeting_id": meetingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByMeetingID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByMeetingID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс броней
func (r *Repository) scanBookings(rows *sql.Rows, method string) ([]domain.GuestMeeting, error) {
	bookings := make([]domain.GuestMeeting, 0)

	for rows.Next() {
		var booking domain.GuestMeeting
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Reference,
			&booking.MeetingID,
			&booking.Name,
			&booking.Email,
			&booking.BookedDate,
			&booking.BookedTime,
			&booking.GuestEmails,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		booking.CreatedAt = createdAt.Time
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}
