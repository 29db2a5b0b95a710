package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	"github.com/bandicon/jam-schedule-service/pkg/dbmetrics"
	"github.com/bandicon/jam-schedule-service/pkg/psqlbuilder"
	"github.com/bandicon/jam-schedule-service/pkg/types"
)

const table = "jam_schedules"

var columns = []string{
	"id",
	"jam_id",
	"owner_id",
	"schedule_date",
	"start_time",
	"end_time",
	"all_day_yn",
	"title",
	"content",
	"created_at",
}

// Repository репозиторий интервалов расписания джемов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет один интервал.
// Если в контексте есть транзакция (через dbmetrics.WithTx), запрос выполняется в ней.
// Время хранится строками формата бэкенда: "HHMMSS".
func (r *Repository) Create(ctx context.Context, interval *domain.ScheduleInterval) (*domain.ScheduleInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"jam_id",
			"owner_id",
			"schedule_date",
			"start_time",
			"end_time",
			"all_day_yn",
			"title",
			"content",
		).
		Values(
			interval.JamID,
			interval.OwnerID,
			types.DateString(interval.Date),
			types.NewClockString(interval.StartHour, interval.StartMinute, 0),
			types.NewClockString(interval.EndHour, interval.EndMinute, 0),
			interval.AllDayYn,
			interval.Title,
			interval.Content,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&interval.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	interval.CreatedAt = createdAt.Time

	return interval, nil
}

// GetByFilter получает интервалы джема
// Поддерживает фильтрацию по периоду дат и владельцу.
//
// Примеры:
//
//	// интервалы на конкретную дату
//	filter := domain.ScheduleFilter{JamID: 7, DateFrom: "20261016", DateTo: "20261016"}
//
//	// интервалы за месяц
//	filter := domain.ScheduleFilter{JamID: 7, DateFrom: "20261001", DateTo: "20261031"}
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"jam_id": filter.JamID})

	if filter.DateFrom != "" {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"schedule_date": filter.DateFrom})
	}
	if filter.DateTo != "" {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"schedule_date": filter.DateTo})
	}
	if filter.OwnerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"owner_id": *filter.OwnerID})
	}

	query, args, err := selectBuilder.
		OrderBy("schedule_date ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

// DeleteByOwnerAndDate удаляет все интервалы участника на дату одним запросом
// Возвращает количество удаленных строк
func (r *Repository) DeleteByOwnerAndDate(ctx context.Context, jamID, ownerID int64, date string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{
			"jam_id":        jamID,
			"owner_id":      ownerID,
			"schedule_date": date,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwnerAndDate - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwnerAndDate - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwnerAndDate - rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

func scanIntervals(rows *sql.Rows) ([]domain.ScheduleInterval, error) {
	intervals := make([]domain.ScheduleInterval, 0)

	for rows.Next() {
		var (
			iv        domain.ScheduleInterval
			date      types.DateString
			start     types.ClockString
			end       types.ClockString
			createdAt sql.NullTime
		)

		if err := rows.Scan(
			&iv.ID,
			&iv.JamID,
			&iv.OwnerID,
			&date,
			&start,
			&end,
			&iv.AllDayYn,
			&iv.Title,
			&iv.Content,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan interval: %v", ErrScanRow, err)
		}

		if err := fillTimes(&iv, start, end); err != nil {
			return nil, err
		}
		iv.Date = date.String()
		iv.CreatedAt = createdAt.Time

		intervals = append(intervals, iv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return intervals, nil
}

func fillTimes(iv *domain.ScheduleInterval, start, end types.ClockString) error {
	var err error
	if iv.StartHour, iv.StartMinute, err = start.HourMinute(); err != nil {
		return fmt.Errorf("%w: interval id=%d start: %v", ErrInvalidTime, iv.ID, err)
	}
	if iv.EndHour, iv.EndMinute, err = end.HourMinute(); err != nil {
		return fmt.Errorf("%w: interval id=%d end: %v", ErrInvalidTime, iv.ID, err)
	}
	return nil
}
