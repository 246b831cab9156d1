package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/drilan/barbershop-booking/internal/domain"
	"github.com/drilan/barbershop-booking/pkg/dbmetrics"
	"github.com/drilan/barbershop-booking/pkg/psqlbuilder"
	"github.com/drilan/barbershop-booking/pkg/types"
)

var overrideColumns = []string{
	"id",
	"override_date",
	"is_holiday",
	"opening_time",
	"closing_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с переопределениями расписания по датам
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория переопределений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет переопределение на дату
// Дата уникальна: повторная запись на ту же дату заменяет существующую
func (r *Repository) Upsert(ctx context.Context, override *domain.ScheduleOverride) (*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_overrides").
		Columns(
			"override_date",
			"is_holiday",
			"opening_time",
			"closing_time",
		).
		Values(
			override.Date,
			override.IsHoliday,
			override.OpeningTime,
			override.ClosingTime,
		).
		Suffix(`ON CONFLICT (override_date) DO UPDATE SET
			is_holiday = EXCLUDED.is_holiday,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// GetByDate получает переопределение на конкретную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("schedule_overrides").
		Where(squirrel.Eq{"override_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	override, err := r.scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan override: %v", ErrScanRow, err)
	}

	return override, nil
}

// ListRange получает переопределения в диапазоне дат [from, to] включительно
func (r *Repository) ListRange(ctx context.Context, from, to time.Time) ([]*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("schedule_overrides").
		Where(squirrel.GtOrEq{"override_date": from}).
		Where(squirrel.LtOrEq{"override_date": to}).
		OrderBy("override_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.ScheduleOverride, 0)
	for rows.Next() {
		override, err := r.scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRange - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// DeleteByDate удаляет переопределение на дату
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_overrides").
		Where(squirrel.Eq{"override_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanOverride(row rowScanner) (*domain.ScheduleOverride, error) {
	var override domain.ScheduleOverride
	var createdAt, updatedAt sql.NullTime
	var openingTime, closingTime types.TimeString

	err := row.Scan(
		&override.ID,
		&override.Date,
		&override.IsHoliday,
		&openingTime,
		&closingTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL в колонках TIME сканируется в пустой TimeString
	if !openingTime.IsZero() {
		override.OpeningTime = &openingTime
	}
	if !closingTime.IsZero() {
		override.ClosingTime = &closingTime
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}
