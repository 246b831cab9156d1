package domain

import (
	"time"

	"github.com/drilan/barbershop-booking/pkg/types"
)

// ScheduleOverride переопределение расписания на конкретную дату
// Уникально по дате; либо полный выходной (IsHoliday), либо особые часы работы
type ScheduleOverride struct {
	ID          int64
	Date        time.Time
	IsHoliday   bool
	OpeningTime *types.TimeString
	ClosingTime *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasHours возвращает true, если переопределение задает обе границы рабочих часов
func (o *ScheduleOverride) HasHours() bool {
	return !o.IsHoliday &&
		o.OpeningTime != nil && !o.OpeningTime.IsZero() &&
		o.ClosingTime != nil && !o.ClosingTime.IsZero()
}

// DaySchedule эффективные часы работы магазина на конкретную дату
type DaySchedule struct {
	Closed      bool
	OpeningTime types.TimeString
	ClosingTime types.TimeString
}

// ResolveDaySchedule вычисляет эффективные часы работы на дату
//
// Приоритет:
//  1. Переопределение с IsHoliday - магазин закрыт.
//  2. Переопределение с обеими границами часов - эти часы (в том числе для выходных).
//  3. Суббота и воскресенье без такого переопределения - магазин закрыт.
//  4. Часы по умолчанию из профиля; при их отсутствии - fallback.
//
// Профиль и переопределение передаются явно: резолвер не обращается к хранилищу
// и не зависит от глобального состояния. profile и override могут быть nil.
func ResolveDaySchedule(date time.Time, override *ScheduleOverride, profile *ShopProfile, fallback DaySchedule) DaySchedule {
	if override != nil {
		if override.IsHoliday {
			return DaySchedule{Closed: true}
		}
		if override.HasHours() {
			return DaySchedule{
				OpeningTime: *override.OpeningTime,
				ClosingTime: *override.ClosingTime,
			}
		}
	}

	if isWeekend(date) {
		return DaySchedule{Closed: true}
	}

	if profile != nil && !profile.DefaultOpeningTime.IsZero() && !profile.DefaultClosingTime.IsZero() {
		return DaySchedule{
			OpeningTime: profile.DefaultOpeningTime,
			ClosingTime: profile.DefaultClosingTime,
		}
	}

	return fallback
}

// FallbackDaySchedule возвращает захардкоженные часы работы
// Применяется, когда профиль магазина недоступен или не заполнен
func FallbackDaySchedule() DaySchedule {
	return DaySchedule{
		OpeningTime: types.TimeString(FallbackOpeningTime),
		ClosingTime: types.TimeString(FallbackClosingTime),
	}
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
