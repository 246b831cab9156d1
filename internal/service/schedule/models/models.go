package models

import (
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
	"github.com/drilan/barbershop-booking/pkg/ptr"
)

// OverrideResponse модель переопределения расписания для отдачи наружу
type OverrideResponse struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"` // "YYYY-MM-DD"
	IsHoliday   bool      `json:"isHoliday"`
	OpeningTime *string   `json:"openingTime,omitempty"` // "HH:MM", nil для выходных
	ClosingTime *string   `json:"closingTime,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SetOverrideRequest запрос на создание/обновление переопределения на дату
// Для выходного дня (IsHoliday) часы игнорируются; иначе обе границы обязательны
type SetOverrideRequest struct {
	Date        string `json:"-"` // заполняется из URL
	IsHoliday   bool   `json:"isHoliday"`
	OpeningTime string `json:"openingTime"` // "HH:MM"
	ClosingTime string `json:"closingTime"` // "HH:MM"
}

// ListOverridesRequest запрос списка переопределений на интервал дат
type ListOverridesRequest struct {
	From string `json:"from"` // "YYYY-MM-DD"
	To   string `json:"to"`   // "YYYY-MM-DD"
}

// FromDomainOverride конвертирует доменное переопределение в response-модель
func FromDomainOverride(o *domain.ScheduleOverride) *OverrideResponse {
	resp := &OverrideResponse{
		ID:        o.ID,
		Date:      o.Date.Format(domain.DateFormat),
		IsHoliday: o.IsHoliday,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.OpeningTime != nil && !o.OpeningTime.IsZero() {
		resp.OpeningTime = ptr.Ptr(o.OpeningTime.String())
	}
	if o.ClosingTime != nil && !o.ClosingTime.IsZero() {
		resp.ClosingTime = ptr.Ptr(o.ClosingTime.String())
	}
	return resp
}

// FromDomainOverrideList конвертирует список доменных переопределений
func FromDomainOverrideList(overrides []*domain.ScheduleOverride) []*OverrideResponse {
	result := make([]*OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		result = append(result, FromDomainOverride(o))
	}
	return result
}
