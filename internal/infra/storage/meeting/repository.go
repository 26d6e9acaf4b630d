package meeting

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/dbmetrics"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/psqlbuilder"
)

const meetingColumns = "id, meeting_name, location, description, custom_url, cover_photo, " +
	"event_duration, time_slot_increment, date_range, reminder_days, user_uid, created_at, updated_at"

// Repository репозиторий для работы со встречами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую встречу
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Используется в транзакции вместе с записью окон доступности, чтобы
// встреча без расписания не была видна гостям.
func (r *Repository) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("meetings").
		Columns(
			"meeting_name",
			"location",
			"description",
			"custom_url",
			"cover_photo",
			"event_duration",
			"time_slot_increment",
			"date_range",
			"reminder_days",
			"user_uid",
		).
		Values(
			m.MeetingName,
			m.Location,
			m.Description,
			m.CustomURL,
			m.CoverPhoto,
			m.EventDuration,
			m.TimeSlotIncrement,
			m.DateRange,
			m.ReminderDays,
			m.UserUID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// GetByID получает встречу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(meetingColumns).
		From("meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanMeeting(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByUserUID получает все встречи владельца, новые первыми
func (r *Repository) GetByUserUID(ctx context.Context, userUID string) ([]*domain.Meeting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(meetingColumns).
		From("meetings").
		Where(squirrel.Eq{"user_uid": userUID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserUID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserUID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		var m domain.Meeting
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&m.ID,
			&m.MeetingName,
			&m.Location,
			&m.Description,
			&m.CustomURL,
			&m.CoverPhoto,
			&m.EventDuration,
			&m.TimeSlotIncrement,
			&m.DateRange,
			&m.ReminderDays,
			&m.UserUID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserUID - scan row: %v", ErrScanRow, err)
		}

		m.CreatedAt = createdAt.Time
		m.UpdatedAt = updatedAt.Time
		meetings = append(meetings, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserUID - rows error: %v", ErrScanRow, err)
	}

	return meetings, nil
}

// Update обновляет все редактируемые поля встречи
func (r *Repository) Update(ctx context.Context, m *domain.Meeting) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("meetings").
		Set("meeting_name", m.MeetingName).
		Set("location", m.Location).
		Set("description", m.Description).
		Set("custom_url", m.CustomURL).
		Set("cover_photo", m.CoverPhoto).
		Set("event_duration", m.EventDuration).
		Set("time_slot_increment", m.TimeSlotIncrement).
		Set("date_range", m.DateRange).
		Set("reminder_days", m.ReminderDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMeetingNotFound
	}

	return nil
}

// Delete удаляет встречу (физическое удаление)
// Окна доступности и брони удаляются своими репозиториями в той же
// транзакции на уровне сервиса.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMeetingNotFound
	}

	return nil
}

// scanMeeting сканирует одну строку встречи
func (r *Repository) scanMeeting(row *sql.Row, method string) (*domain.Meeting, error) {
	var m domain.Meeting
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.MeetingName,
		&m.Location,
		&m.Description,
		&m.CustomURL,
		&m.CoverPhoto,
		&m.EventDuration,
		&m.TimeSlotIncrement,
		&m.DateRange,
		&m.ReminderDays,
		&m.UserUID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan meeting: %v", ErrScanRow, method, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}
