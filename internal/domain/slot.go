package domain

import "github.com/drilan/barbershop-booking/pkg/types"

// TimeSlot часовой слот расписания на дату
// Производная структура для отображения, не сохраняется в БД
type TimeSlot struct {
	Time   types.TimeString
	Status ReservationStatus
}

// IsAvailable returns true if the slot can be booked
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == StatusAvailable
}
