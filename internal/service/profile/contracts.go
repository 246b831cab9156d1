package profile

import (
	"context"
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
	"github.com/drilan/barbershop-booking/pkg/types"
)

// ProfileRepository интерфейс репозитория профиля магазина
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.ShopProfile, error)
	UpdateShiftHours(ctx context.Context, id int64, shift domain.Shift, opening, closing types.TimeString) error
	UpdateGoogleTokens(ctx context.Context, id int64, accessToken, refreshToken string, expiry time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
