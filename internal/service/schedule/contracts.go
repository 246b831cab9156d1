package schedule

import (
	"context"
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
)

// ScheduleRepository интерфейс репозитория переопределений расписания
type ScheduleRepository interface {
	Upsert(ctx context.Context, override *domain.ScheduleOverride) (*domain.ScheduleOverride, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleOverride, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.ScheduleOverride, error)
	DeleteByDate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
