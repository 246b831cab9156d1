package get_day_schedule

import (
	"fmt"

	"github.com/drilan/barbershop-booking/internal/domain"
	"github.com/drilan/barbershop-booking/pkg/types"
)

// generateHourlySlots генерирует упорядоченную последовательность часовых слотов
// от часа открытия до часа закрытия включительно
//
// Минуты входных значений не учитываются - слот всегда начинается на границе часа
// ("09:30"-"12:15" дает 09:00, 10:00, 11:00, 12:00). Если час открытия позже часа
// закрытия, последовательность пуста; при равенстве - ровно один слот
func generateHourlySlots(opening, closing types.TimeString) []types.TimeString {
	openHour := opening.Hour()
	closeHour := closing.Hour()

	slots := make([]types.TimeString, 0)
	for h := openHour; h <= closeHour; h++ {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:00", h)))
	}

	return slots
}

// mergeReservations накладывает брони на сгенерированные слоты
//
// Статус слота равен статусу брони на тот же час (час брони усекается до HH:MM),
// иначе available. Две активные брони на один час - нарушение целостности данных:
// фиксируется в логе, побеждает первая встреченная (детерминированно)
func mergeReservations(
	slots []types.TimeString,
	reservations []*domain.Reservation,
	logger Logger,
) []domain.TimeSlot {
	byHour := make(map[types.TimeString]domain.ReservationStatus, len(reservations))

	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}

		hour := r.StartHour.TruncateToHour()
		if existing, ok := byHour[hour]; ok {
			logger.Warn("mergeReservations: duplicate active reservations for %s %s (kept status=%s, ignored status=%s)",
				r.ReservationDate.Format(domain.DateFormat), hour, existing, r.Status)
			continue
		}
		byHour[hour] = r.Status
	}

	result := make([]domain.TimeSlot, len(slots))
	for i, slotTime := range slots {
		status := domain.StatusAvailable
		if s, ok := byHour[slotTime]; ok {
			status = s
		}
		result[i] = domain.TimeSlot{
			Time:   slotTime,
			Status: status,
		}
	}

	return result
}
