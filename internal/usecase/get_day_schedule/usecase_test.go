package get_day_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drilan/barbershop-booking/internal/domain"
	scheduleRepo "github.com/drilan/barbershop-booking/internal/infra/storage/schedule"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type stubProfileRepo struct {
	profile *domain.ShopProfile
	err     error
}

func (s *stubProfileRepo) Get(ctx context.Context) (*domain.ShopProfile, error) {
	return s.profile, s.err
}

type stubScheduleRepo struct {
	override *domain.ScheduleOverride
	err      error
}

func (s *stubScheduleRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleOverride, error) {
	return s.override, s.err
}

type stubReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (s *stubReservationRepo) GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Reservation, error) {
	return s.reservations, s.err
}

// Понедельник
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func workingProfile() *domain.ShopProfile {
	return &domain.ShopProfile{
		ID:                 1,
		OwnerEmail:         "owner@example.com",
		DefaultOpeningTime: "08:00",
		DefaultClosingTime: "11:00",
	}
}

func TestExecute_GeneratesSlotsWithReservationOverlay(t *testing.T) {
	uc := NewUseCase(
		&stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound},
		&stubReservationRepo{reservations: []*domain.Reservation{
			{ID: 1, ReservationDate: monday, StartHour: "09:00", Status: domain.StatusConfirmed},
		}},
		&noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, RequestToken: "tok-42"})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Equal(t, "tok-42", resp.RequestToken)
	require.Len(t, resp.Slots, 4)

	assert.Equal(t, "available", resp.Slots[0].Status)
	assert.Equal(t, "confirmed", resp.Slots[1].Status)
	assert.Equal(t, "available", resp.Slots[2].Status)
	assert.Equal(t, "available", resp.Slots[3].Status)
}

func TestExecute_HolidayReturnsClosedWithEmptySlots(t *testing.T) {
	uc := NewUseCase(
		&stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{override: &domain.ScheduleOverride{Date: monday, IsHoliday: true}},
		&stubReservationRepo{},
		&noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_WeekendClosed(t *testing.T) {
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound},
		&stubReservationRepo{},
		&noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)
	assert.True(t, resp.Closed)
}

func TestExecute_ProfileErrorFallsBackToDefaultHours(t *testing.T) {
	uc := NewUseCase(
		&stubProfileRepo{err: errors.New("db down")},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound},
		&stubReservationRepo{},
		&noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	// Запасные часы 08:00-20:00 дают 13 слотов
	assert.False(t, resp.Closed)
	assert.Len(t, resp.Slots, 13)
	assert.Equal(t, "08:00", resp.Slots[0].Time.String())
	assert.Equal(t, "20:00", resp.Slots[len(resp.Slots)-1].Time.String())
}

func TestExecute_ReservationErrorFails(t *testing.T) {
	uc := NewUseCase(
		&stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound},
		&stubReservationRepo{err: errors.New("db down")},
		&noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := NewUseCase(
		&stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{},
		&stubReservationRepo{},
		&noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
