package create_reservation

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
	existing  []*domain.Reservation
	createErr error
	cancelled bool

	created *domain.Reservation
}

func (s *stubReservationRepo) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *r
	created.ID = 101
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

func (s *stubReservationRepo) GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Reservation, error) {
	return s.existing, nil
}

func (s *stubReservationRepo) Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error {
	s.cancelled = true
	return nil
}

type stubMailer struct {
	err error

	to      []string
	subject string
	calls   int
}

func (m *stubMailer) Send(ctx context.Context, to []string, subject, body string) error {
	m.calls++
	m.to = to
	m.subject = subject
	return m.err
}

// inlineTxManager выполняет fn без реальной транзакции
type inlineTxManager struct{}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// Понедельник
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func workingProfile() *domain.ShopProfile {
	return &domain.ShopProfile{
		ID:                 1,
		OwnerEmail:         "owner@shop.com",
		DefaultOpeningTime: "08:00",
		DefaultClosingTime: "20:00",
	}
}

func newTestUseCase(
	reservations *stubReservationRepo,
	profile *stubProfileRepo,
	schedule *stubScheduleRepo,
	mailer *stubMailer,
) *UseCase {
	uc := NewUseCase(reservations, profile, schedule, mailer, &inlineTxManager{}, "config-owner@shop.com", &noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		UserEmail: "client@example.com",
		Date:      monday,
		StartHour: "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	reservations := &stubReservationRepo{}
	mailer := &stubMailer{}

	uc := newTestUseCase(reservations, &stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound}, mailer)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "10:00", resp.StartHour.String())

	// Одно письмо на владельца и пользователя
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, []string{"owner@shop.com", "client@example.com"}, mailer.to)
}

func TestExecute_OwnerEmailFromConfigWhenProfileMissing(t *testing.T) {
	reservations := &stubReservationRepo{}
	mailer := &stubMailer{}

	uc := newTestUseCase(reservations, &stubProfileRepo{err: errors.New("db down")},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound}, mailer)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"config-owner@shop.com", "client@example.com"}, mailer.to)
}

func TestExecute_SlotTaken(t *testing.T) {
	reservations := &stubReservationRepo{
		existing: []*domain.Reservation{
			{ID: 1, ReservationDate: monday, StartHour: "10:00", Status: domain.StatusConfirmed},
		},
	}
	mailer := &stubMailer{}

	uc := newTestUseCase(reservations, &stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound}, mailer)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 0, mailer.calls)
}

func TestExecute_CancelledReservationDoesNotBlockSlot(t *testing.T) {
	reservations := &stubReservationRepo{
		existing: []*domain.Reservation{
			{ID: 1, ReservationDate: monday, StartHour: "10:00", Status: domain.StatusCancelledByUser},
		},
	}

	uc := newTestUseCase(reservations, &stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound}, &stubMailer{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_ShopClosedOnHoliday(t *testing.T) {
	uc := newTestUseCase(&stubReservationRepo{}, &stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{override: &domain.ScheduleOverride{Date: monday, IsHoliday: true}}, &stubMailer{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_SlotOutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(&stubReservationRepo{}, &stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound}, &stubMailer{})

	req := validRequest()
	req.StartHour = "22:00"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&stubReservationRepo{}, &stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound}, &stubMailer{})

	req := validRequest()
	req.Date = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MailFailureCompensatesReservation(t *testing.T) {
	reservations := &stubReservationRepo{}
	mailer := &stubMailer{err: errors.New("sendgrid 500")}

	uc := newTestUseCase(reservations, &stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound}, mailer)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotificationFailed)

	// Созданная бронь отменена компенсацией
	require.NotNil(t, reservations.created)
	assert.True(t, reservations.cancelled)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&stubReservationRepo{}, &stubProfileRepo{profile: workingProfile()},
		&stubScheduleRepo{err: scheduleRepo.ErrOverrideNotFound}, &stubMailer{})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing user", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "missing email", mutate: func(r *Request) { r.UserEmail = "" }},
		{name: "missing hour", mutate: func(r *Request) { r.StartHour = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
