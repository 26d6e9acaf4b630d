package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/dbmetrics"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/psqlbuilder"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

// Repository репозиторий для работы с окнами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByMeetingID получает все окна доступности встречи в порядке
// их сохранения. Порядок по id важен: композер восстанавливает даты
// в порядке первого появления.
func (r *Repository) GetByMeetingID(ctx context.Context, meetingID int64) ([]domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "meeting_id", "date", "start_time", "end_time").
		From("availability_slots").
		Where(squirrel.Eq{"meeting_id": meetingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMeetingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMeetingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		var start, end types.TimeString
		if err := rows.Scan(&slot.ID, &slot.MeetingID, &slot.Date, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetByMeetingID - scan row: %v", ErrScanRow, err)
		}
		slot.StartTime = &start
		slot.EndTime = &end
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByMeetingID - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ReplaceForMeeting заменяет расписание встречи целиком: удаляет
// старые окна и вставляет новые. Вызывается только внутри транзакции
// вместе с обновлением самой встречи.
func (r *Repository) ReplaceForMeeting(ctx context.Context, meetingID int64, slots []domain.AvailabilitySlot) error {
	if err := r.DeleteByMeetingID(ctx, meetingID); err != nil {
		return err
	}
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_slots").
		Columns("meeting_id", "date", "start_time", "end_time")
	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(meetingID, slot.Date, slot.StartTime, slot.EndTime)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForMeeting - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForMeeting - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByMeetingID удаляет все окна доступности встречи
// Отсутствие окон не считается ошибкой
func (r *Repository) DeleteByMeetingID(ctx context.Context, meetingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_slots").
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
