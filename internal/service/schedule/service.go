package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
	scheduleRepo "github.com/drilan/barbershop-booking/internal/infra/storage/schedule"
	"github.com/drilan/barbershop-booking/internal/service/schedule/models"
	"github.com/drilan/barbershop-booking/pkg/types"
)

// Service сервис для управления переопределениями расписания
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// SetOverride создает или обновляет переопределение расписания на дату
//
// Для выходного дня переданные часы игнорируются и не сохраняются.
// Для рабочего дня обе границы обязательны, иначе переопределение
// ничего не переопределяет.
func (s *Service) SetOverride(ctx context.Context, req *models.SetOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("SetOverride: date=%s, holiday=%t", req.Date, req.IsHoliday)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("SetOverride: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	override := &domain.ScheduleOverride{
		Date:      date,
		IsHoliday: req.IsHoliday,
	}

	if !req.IsHoliday {
		opening, err := types.NewTimeStringFromString(req.OpeningTime)
		if err != nil {
			s.logger.Warn("SetOverride: invalid opening time %q: %v", req.OpeningTime, err)
			return nil, fmt.Errorf("%w: opening time: %v", ErrInvalidHours, err)
		}

		closing, err := types.NewTimeStringFromString(req.ClosingTime)
		if err != nil {
			s.logger.Warn("SetOverride: invalid closing time %q: %v", req.ClosingTime, err)
			return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidHours, err)
		}

		if opening.IsAfter(closing) {
			s.logger.Warn("SetOverride: opening %s is after closing %s", opening, closing)
			return nil, fmt.Errorf("%w: opening must not be after closing", ErrInvalidHours)
		}

		override.OpeningTime = &opening
		override.ClosingTime = &closing
	}

	saved, err := s.scheduleRepo.Upsert(ctx, override)
	if err != nil {
		s.logger.Error("SetOverride: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetOverride: override saved for %s (id=%d)", req.Date, saved.ID)
	return models.FromDomainOverride(saved), nil
}

// GetOverride возвращает переопределение на конкретную дату
func (s *Service) GetOverride(ctx context.Context, rawDate string) (*models.OverrideResponse, error) {
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, rawDate)
	}

	override, err := s.scheduleRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			return nil, ErrOverrideNotFound
		}
		s.logger.Error("GetOverride: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetOverride - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverride(override), nil
}

// ListOverrides возвращает переопределения на интервал дат включительно
func (s *Service) ListOverrides(ctx context.Context, req *models.ListOverridesRequest) ([]*models.OverrideResponse, error) {
	from, err := time.Parse(domain.DateFormat, req.From)
	if err != nil {
		return nil, fmt.Errorf("%w: from: %q", ErrInvalidDate, req.From)
	}

	to, err := time.Parse(domain.DateFormat, req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: to: %q", ErrInvalidDate, req.To)
	}

	if to.Before(from) {
		return nil, fmt.Errorf("%w: interval end is before start", ErrInvalidInput)
	}

	overrides, err := s.scheduleRepo.ListRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrideList(overrides), nil
}

// DeleteOverride удаляет переопределение на дату
// Дата возвращается к обычному правилу расписания
func (s *Service) DeleteOverride(ctx context.Context, rawDate string) error {
	s.logger.Info("DeleteOverride: date=%s", rawDate)

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, rawDate)
	}

	if err := s.scheduleRepo.DeleteByDate(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error: %v", err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOverride: override removed for %s", rawDate)
	return nil
}
