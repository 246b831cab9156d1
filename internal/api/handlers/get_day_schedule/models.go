package get_day_schedule

import (
	"github.com/drilan/barbershop-booking/internal/domain"
	getDaySchedule "github.com/drilan/barbershop-booking/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date         string         `json:"date"`
	Closed       bool           `json:"closed"`
	RequestToken string         `json:"requestToken,omitempty"`
	Slots        []SlotResponse `json:"slots"`
}

// SlotResponse часовой слот в HTTP ответе
type SlotResponse struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:   s.Time.String(),
			Status: s.Status,
		})
	}

	return &DayScheduleResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Closed:       resp.Closed,
		RequestToken: resp.RequestToken,
		Slots:        slots,
	}
}
