package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
	profileRepo "github.com/drilan/barbershop-booking/internal/infra/storage/profile"
	"github.com/drilan/barbershop-booking/internal/service/profile/models"
	"github.com/drilan/barbershop-booking/pkg/types"
)

// Service сервис для работы с профилем магазина
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get получает профиль магазина
func (s *Service) Get(ctx context.Context) (*models.ProfileResponse, error) {
	s.logger.Info("Get: fetching shop profile")

	p, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Get: shop profile not found")
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(p), nil
}

// UpdateShiftHours обновляет часы указанной смены
// Возвращает обновленный профиль
func (s *Service) UpdateShiftHours(ctx context.Context, req *models.UpdateShiftHoursRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateShiftHours: shift=%s, opening=%s, closing=%s", req.Shift, req.OpeningTime, req.ClosingTime)

	shift := domain.Shift(req.Shift)
	if !shift.IsValid() {
		s.logger.Warn("UpdateShiftHours: invalid shift %q", req.Shift)
		return nil, fmt.Errorf("%w: %q", ErrInvalidShift, req.Shift)
	}

	opening, err := types.NewTimeStringFromString(req.OpeningTime)
	if err != nil {
		s.logger.Warn("UpdateShiftHours: invalid opening time %q: %v", req.OpeningTime, err)
		return nil, fmt.Errorf("%w: opening time: %v", ErrInvalidHours, err)
	}

	closing, err := types.NewTimeStringFromString(req.ClosingTime)
	if err != nil {
		s.logger.Warn("UpdateShiftHours: invalid closing time %q: %v", req.ClosingTime, err)
		return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidHours, err)
	}

	if opening.IsAfter(closing) {
		s.logger.Warn("UpdateShiftHours: opening %s is after closing %s", opening, closing)
		return nil, fmt.Errorf("%w: opening must not be after closing", ErrInvalidHours)
	}

	p, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("UpdateShiftHours: failed to get profile: %v", err)
		return nil, fmt.Errorf("%w: UpdateShiftHours - repository error: %v", ErrInternal, err)
	}

	if err := s.profileRepo.UpdateShiftHours(ctx, p.ID, shift, opening, closing); err != nil {
		s.logger.Error("UpdateShiftHours: failed to update hours: %v", err)
		return nil, fmt.Errorf("%w: UpdateShiftHours - repository error: %v", ErrInternal, err)
	}

	updated, err := s.profileRepo.Get(ctx)
	if err != nil {
		s.logger.Error("UpdateShiftHours: failed to re-read profile: %v", err)
		return nil, fmt.Errorf("%w: UpdateShiftHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateShiftHours: shift %s updated to %s-%s", shift, opening, closing)
	return models.FromDomainProfile(updated), nil
}

// StoreGoogleTokens сохраняет OAuth-токены Google Calendar на профиле
func (s *Service) StoreGoogleTokens(ctx context.Context, accessToken, refreshToken string, expiry time.Time) error {
	s.logger.Info("StoreGoogleTokens: storing google calendar tokens")

	if accessToken == "" {
		return fmt.Errorf("%w: access token is required", ErrInvalidInput)
	}

	p, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		s.logger.Error("StoreGoogleTokens: failed to get profile: %v", err)
		return fmt.Errorf("%w: StoreGoogleTokens - repository error: %v", ErrInternal, err)
	}

	if err := s.profileRepo.UpdateGoogleTokens(ctx, p.ID, accessToken, refreshToken, expiry); err != nil {
		s.logger.Error("StoreGoogleTokens: failed to store tokens: %v", err)
		return fmt.Errorf("%w: StoreGoogleTokens - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("StoreGoogleTokens: google calendar linked")
	return nil
}
