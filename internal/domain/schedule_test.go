package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drilan/barbershop-booking/pkg/types"
)

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func testProfile() *ShopProfile {
	return &ShopProfile{
		ID:                 1,
		OwnerEmail:         "owner@example.com",
		DefaultOpeningTime: "09:00",
		DefaultClosingTime: "18:00",
	}
}

// Понедельник
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

// Суббота
var saturday = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

func TestResolveDaySchedule_Holiday(t *testing.T) {
	override := &ScheduleOverride{
		Date:        monday,
		IsHoliday:   true,
		OpeningTime: timePtr("10:00"),
		ClosingTime: timePtr("16:00"),
	}

	// Праздник побеждает, даже если часы заданы
	got := ResolveDaySchedule(monday, override, testProfile(), FallbackDaySchedule())
	assert.True(t, got.Closed)
}

func TestResolveDaySchedule_OverrideHours(t *testing.T) {
	override := &ScheduleOverride{
		Date:        monday,
		OpeningTime: timePtr("10:00"),
		ClosingTime: timePtr("16:00"),
	}

	got := ResolveDaySchedule(monday, override, testProfile(), FallbackDaySchedule())
	assert.False(t, got.Closed)
	assert.Equal(t, types.TimeString("10:00"), got.OpeningTime)
	assert.Equal(t, types.TimeString("16:00"), got.ClosingTime)
}

func TestResolveDaySchedule_OverrideOpensWeekend(t *testing.T) {
	override := &ScheduleOverride{
		Date:        saturday,
		OpeningTime: timePtr("10:00"),
		ClosingTime: timePtr("14:00"),
	}

	got := ResolveDaySchedule(saturday, override, testProfile(), FallbackDaySchedule())
	assert.False(t, got.Closed)
	assert.Equal(t, types.TimeString("10:00"), got.OpeningTime)
}

func TestResolveDaySchedule_WeekendClosed(t *testing.T) {
	got := ResolveDaySchedule(saturday, nil, testProfile(), FallbackDaySchedule())
	assert.True(t, got.Closed)

	sunday := saturday.AddDate(0, 0, 1)
	got = ResolveDaySchedule(sunday, nil, testProfile(), FallbackDaySchedule())
	assert.True(t, got.Closed)
}

func TestResolveDaySchedule_PartialOverrideFallsThrough(t *testing.T) {
	// Переопределение только с открытием часов не задает
	override := &ScheduleOverride{
		Date:        monday,
		OpeningTime: timePtr("10:00"),
	}

	got := ResolveDaySchedule(monday, override, testProfile(), FallbackDaySchedule())
	assert.False(t, got.Closed)
	assert.Equal(t, types.TimeString("09:00"), got.OpeningTime)
	assert.Equal(t, types.TimeString("18:00"), got.ClosingTime)
}

func TestResolveDaySchedule_ProfileDefaults(t *testing.T) {
	got := ResolveDaySchedule(monday, nil, testProfile(), FallbackDaySchedule())
	assert.False(t, got.Closed)
	assert.Equal(t, types.TimeString("09:00"), got.OpeningTime)
	assert.Equal(t, types.TimeString("18:00"), got.ClosingTime)
}

func TestResolveDaySchedule_Fallback(t *testing.T) {
	// Без профиля
	got := ResolveDaySchedule(monday, nil, nil, FallbackDaySchedule())
	assert.False(t, got.Closed)
	assert.Equal(t, types.TimeString(FallbackOpeningTime), got.OpeningTime)
	assert.Equal(t, types.TimeString(FallbackClosingTime), got.ClosingTime)

	// Профиль без часов по умолчанию
	got = ResolveDaySchedule(monday, nil, &ShopProfile{ID: 1}, FallbackDaySchedule())
	assert.Equal(t, types.TimeString(FallbackOpeningTime), got.OpeningTime)
}

func TestReservation_CanBeCancelled(t *testing.T) {
	r := &Reservation{Status: StatusConfirmed}
	assert.True(t, r.CanBeCancelled())
	assert.True(t, r.IsActive())

	r.Status = StatusCancelledByUser
	assert.False(t, r.CanBeCancelled())
	assert.False(t, r.IsActive())
	assert.True(t, r.IsCancelled())
}

func TestShopProfile_HasGoogleCalendar(t *testing.T) {
	p := testProfile()
	assert.False(t, p.HasGoogleCalendar())

	token := "ya29.token"
	p.GoogleAccessToken = &token
	assert.True(t, p.HasGoogleCalendar())
}
