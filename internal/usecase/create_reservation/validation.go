package create_reservation

import (
	"fmt"
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
	"github.com/drilan/barbershop-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.UserEmail == "" {
		return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartHour.IsZero() {
		return fmt.Errorf("%w: startHour is required", ErrInvalidInput)
	}

	if err := req.StartHour.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startHour format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата брони не в прошлом
func validateDate(reservationDate, now time.Time) error {
	if isDateInPast(reservationDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlotWithinHours проверяет, что час начала лежит на границе часа
// в пределах рабочих часов (от часа открытия до часа закрытия включительно)
func validateSlotWithinHours(startHour types.TimeString, schedule domain.DaySchedule) error {
	if startHour.Minute() != 0 {
		return fmt.Errorf("%w: start hour must be on the hour boundary", ErrInvalidSlot)
	}

	h := startHour.Hour()
	if h < schedule.OpeningTime.Hour() || h > schedule.ClosingTime.Hour() {
		return fmt.Errorf("%w: %s is outside working hours %s-%s",
			ErrInvalidSlot, startHour, schedule.OpeningTime, schedule.ClosingTime)
	}

	return nil
}

// findSlotReservation ищет активную бронь на указанный час
// Час брони усекается до границы часа так же, как при построении расписания
func findSlotReservation(startHour types.TimeString, reservations []*domain.Reservation) *domain.Reservation {
	target := startHour.TruncateToHour()
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if r.StartHour.TruncateToHour() == target {
			return r
		}
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
