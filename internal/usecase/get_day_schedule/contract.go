package get_day_schedule

import (
	"context"
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
)

// ProfileRepository интерфейс репозитория профиля магазина
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.ShopProfile, error)
}

// ScheduleRepository интерфейс репозитория переопределений расписания
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleOverride, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// GetByDate получает брони на конкретную дату
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
