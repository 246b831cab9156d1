package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drilan/barbershop-booking/internal/domain"
	scheduleRepo "github.com/drilan/barbershop-booking/internal/infra/storage/schedule"
	"github.com/drilan/barbershop-booking/internal/service/schedule/models"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	upserted *domain.ScheduleOverride
	deleted  *time.Time

	getErr    error
	deleteErr error
}

func (s *stubRepo) Upsert(ctx context.Context, o *domain.ScheduleOverride) (*domain.ScheduleOverride, error) {
	saved := *o
	saved.ID = 5
	s.upserted = &saved
	return &saved, nil
}

func (s *stubRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ScheduleOverride, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.ScheduleOverride{ID: 5, Date: date}, nil
}

func (s *stubRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.ScheduleOverride, error) {
	return []*domain.ScheduleOverride{{ID: 5, Date: from}}, nil
}

func (s *stubRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = &date
	return nil
}

func TestSetOverride_Holiday_IgnoresHours(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, &noopLogger{})

	resp, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{
		Date:        "2026-09-07",
		IsHoliday:   true,
		OpeningTime: "10:00",
		ClosingTime: "16:00",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsHoliday)
	assert.Nil(t, resp.OpeningTime)
	assert.Nil(t, resp.ClosingTime)
	assert.Nil(t, repo.upserted.OpeningTime)
}

func TestSetOverride_WorkingDayRequiresValidHours(t *testing.T) {
	svc := NewService(&stubRepo{}, &noopLogger{})

	_, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{
		Date:        "2026-09-07",
		OpeningTime: "16:00",
		ClosingTime: "10:00",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHours)

	_, err = svc.SetOverride(context.Background(), &models.SetOverrideRequest{
		Date:        "2026-09-07",
		OpeningTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestSetOverride_InvalidDate(t *testing.T) {
	svc := NewService(&stubRepo{}, &noopLogger{})

	_, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{Date: "07.09.2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDeleteOverride(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, &noopLogger{})

	require.NoError(t, svc.DeleteOverride(context.Background(), "2026-09-07"))
	require.NotNil(t, repo.deleted)

	repo.deleteErr = scheduleRepo.ErrOverrideNotFound
	err := svc.DeleteOverride(context.Background(), "2026-09-08")
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestListOverrides_InvalidInterval(t *testing.T) {
	svc := NewService(&stubRepo{}, &noopLogger{})

	_, err := svc.ListOverrides(context.Background(), &models.ListOverridesRequest{
		From: "2026-09-10",
		To:   "2026-09-01",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
