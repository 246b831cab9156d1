package get_day_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drilan/barbershop-booking/internal/domain"
	"github.com/drilan/barbershop-booking/pkg/types"
)

func TestGenerateHourlySlots(t *testing.T) {
	tests := []struct {
		name    string
		opening types.TimeString
		closing types.TimeString
		want    []types.TimeString
	}{
		{
			name:    "short morning",
			opening: "08:00",
			closing: "11:00",
			want:    []types.TimeString{"08:00", "09:00", "10:00", "11:00"},
		},
		{
			name:    "single slot when equal",
			opening: "10:00",
			closing: "10:00",
			want:    []types.TimeString{"10:00"},
		},
		{
			name:    "minutes are ignored",
			opening: "09:30",
			closing: "12:15",
			want:    []types.TimeString{"09:00", "10:00", "11:00", "12:00"},
		},
		{
			name:    "inverted hours give empty sequence",
			opening: "15:00",
			closing: "10:00",
			want:    []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateHourlySlots(tt.opening, tt.closing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeReservations(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeString{"08:00", "09:00", "10:00", "11:00"}

	reservations := []*domain.Reservation{
		{ID: 1, ReservationDate: date, StartHour: "09:00", Status: domain.StatusConfirmed},
		{ID: 2, ReservationDate: date, StartHour: "11:00", Status: domain.StatusPending},
		// Отмененная бронь слот не занимает
		{ID: 3, ReservationDate: date, StartHour: "10:00", Status: domain.StatusCancelledByUser},
	}

	got := mergeReservations(slots, reservations, &noopLogger{})

	assert.Equal(t, []domain.TimeSlot{
		{Time: "08:00", Status: domain.StatusAvailable},
		{Time: "09:00", Status: domain.StatusConfirmed},
		{Time: "10:00", Status: domain.StatusAvailable},
		{Time: "11:00", Status: domain.StatusPending},
	}, got)

	assert.True(t, got[0].IsAvailable())
	assert.False(t, got[1].IsAvailable())
}

func TestMergeReservations_DuplicateKeepsFirst(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeString{"09:00"}

	reservations := []*domain.Reservation{
		{ID: 1, ReservationDate: date, StartHour: "09:00", Status: domain.StatusConfirmed},
		{ID: 2, ReservationDate: date, StartHour: "09:00", Status: domain.StatusPending},
	}

	got := mergeReservations(slots, reservations, &noopLogger{})
	assert.Equal(t, domain.StatusConfirmed, got[0].Status)
}

func TestMergeReservations_TruncatesReservationHour(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeString{"09:00"}

	// Бронь с минутами попадает в слот своего часа
	reservations := []*domain.Reservation{
		{ID: 1, ReservationDate: date, StartHour: "09:45", Status: domain.StatusConfirmed},
	}

	got := mergeReservations(slots, reservations, &noopLogger{})
	assert.Equal(t, domain.StatusConfirmed, got[0].Status)
}
