package create_reservation

import (
	"context"
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error
}

// ProfileRepository интерфейс репозитория профиля магазина
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.ShopProfile, error)
}

// ScheduleRepository интерфейс репозитория переопределений расписания
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleOverride, error)
}

// Mailer интерфейс отправки писем-уведомлений
type Mailer interface {
	// Send отправляет письмо; дубликаты адресов в to отбрасываются отправителем
	Send(ctx context.Context, to []string, subject, body string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
