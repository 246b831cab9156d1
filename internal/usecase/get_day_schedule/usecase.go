package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/drilan/barbershop-booking/internal/domain"
	scheduleRepo "github.com/drilan/barbershop-booking/internal/infra/storage/schedule"
)

// UseCase use case построения расписания на день
// Конвейер: резолвер часов -> генератор слотов -> наложение броней
type UseCase struct {
	profileRepo     ProfileRepository
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profileRepo ProfileRepository,
	scheduleRepo ScheduleRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		profileRepo:     profileRepo,
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case построения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySchedule: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Профиль магазина; при ошибке чтения работаем на запасных часах,
	// отрисовка расписания никогда не блокируется
	shopProfile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get shop profile, using fallback hours: %v", err)
		shopProfile = nil
	}

	// 3. Переопределение на дату; отсутствие - штатная ситуация
	override, err := uc.scheduleRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		uc.logger.Error("GetDaySchedule: failed to get schedule override, ignoring: %v", err)
		override = nil
	}

	// 4. Резолвим эффективные часы работы
	daySchedule := domain.ResolveDaySchedule(req.Date, override, shopProfile, domain.FallbackDaySchedule())
	if daySchedule.Closed {
		uc.logger.Info("GetDaySchedule: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:         req.Date,
			Closed:       true,
			RequestToken: req.RequestToken,
			Slots:        []Slot{},
		}, nil
	}

	// 5. Генерируем часовые слоты
	timeSlots := generateHourlySlots(daySchedule.OpeningTime, daySchedule.ClosingTime)

	// 6. Брони на дату (только активные)
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date, false)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Накладываем брони на слоты
	merged := mergeReservations(timeSlots, reservations, uc.logger)

	slots := make([]Slot, len(merged))
	for i, s := range merged {
		slots[i] = Slot{
			Time:   s.Time,
			Status: string(s.Status),
		}
	}

	uc.logger.Info("GetDaySchedule: generated %d slots for %s (hours %s-%s)",
		len(slots), req.Date.Format(domain.DateFormat), daySchedule.OpeningTime, daySchedule.ClosingTime)

	return &Response{
		Date:         req.Date,
		Closed:       false,
		RequestToken: req.RequestToken,
		Slots:        slots,
	}, nil
}
