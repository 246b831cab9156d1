package profile

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

var profileColumns = []string{
	"id",
	"shop_title",
	"owner_email",
	"phone",
	"primary_color",
	"secondary_color",
	"primary_font",
	"secondary_font",
	"default_opening_time",
	"default_closing_time",
	"morning_opening_time",
	"morning_closing_time",
	"afternoon_opening_time",
	"afternoon_closing_time",
	"google_access_token",
	"google_refresh_token",
	"google_token_expiry",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с профилем магазина
// Профиль - singleton: таблица содержит ровно одну строку
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профиля
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает профиль магазина
func (r *Repository) Get(ctx context.Context) (*domain.ShopProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("shop_profile").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.ShopProfile
	var createdAt, updatedAt sql.NullTime
	var tokenExpiry sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ShopTitle,
		&p.OwnerEmail,
		&p.Phone,
		&p.PrimaryColor,
		&p.SecondaryColor,
		&p.PrimaryFont,
		&p.SecondaryFont,
		&p.DefaultOpeningTime,
		&p.DefaultClosingTime,
		&p.MorningOpeningTime,
		&p.MorningClosingTime,
		&p.AfternoonOpeningTime,
		&p.AfternoonClosingTime,
		&p.GoogleAccessToken,
		&p.GoogleRefreshToken,
		&tokenExpiry,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan profile: %v", ErrScanRow, err)
	}

	if tokenExpiry.Valid {
		p.GoogleTokenExpiry = &tokenExpiry.Time
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// UpdateShiftHours обновляет часы указанной смены
// Вместе со сменой обновляются часы на весь день: открытие дня = открытие утренней
// смены, закрытие дня = закрытие дневной смены
func (r *Repository) UpdateShiftHours(ctx context.Context, id int64, shift domain.Shift, opening, closing types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("shop_profile").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	switch shift {
	case domain.ShiftMorning:
		updateBuilder = updateBuilder.
			Set("morning_opening_time", opening).
			Set("morning_closing_time", closing).
			Set("default_opening_time", opening)
	case domain.ShiftAfternoon:
		updateBuilder = updateBuilder.
			Set("afternoon_opening_time", opening).
			Set("afternoon_closing_time", closing).
			Set("default_closing_time", closing)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateShiftHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateShiftHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateShiftHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// UpdateGoogleTokens сохраняет OAuth-токены Google Calendar на профиле
func (r *Repository) UpdateGoogleTokens(ctx context.Context, id int64, accessToken, refreshToken string, expiry time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("shop_profile").
		Set("google_access_token", accessToken).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	// Refresh token выдается только при первом consent - не затираем его пустым значением
	if refreshToken != "" {
		updateBuilder = updateBuilder.Set("google_refresh_token", refreshToken)
	}
	if !expiry.IsZero() {
		updateBuilder = updateBuilder.Set("google_token_expiry", expiry)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateGoogleTokens - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateGoogleTokens - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateGoogleTokens - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
