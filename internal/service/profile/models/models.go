package models

import (
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
)

// ProfileResponse модель профиля магазина для отдачи наружу
// Токены Google наружу не отдаются - только флаг привязки
type ProfileResponse struct {
	ID         int64   `json:"id"`
	ShopTitle  *string `json:"shopTitle,omitempty"`
	OwnerEmail string  `json:"ownerEmail"`
	Phone      *string `json:"phone,omitempty"`

	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
	PrimaryFont    *string `json:"primaryFont,omitempty"`
	SecondaryFont  *string `json:"secondaryFont,omitempty"`

	DefaultOpeningTime string `json:"defaultOpeningTime"`
	DefaultClosingTime string `json:"defaultClosingTime"`

	MorningOpeningTime   string `json:"morningOpeningTime"`
	MorningClosingTime   string `json:"morningClosingTime"`
	AfternoonOpeningTime string `json:"afternoonOpeningTime"`
	AfternoonClosingTime string `json:"afternoonClosingTime"`

	GoogleCalendarLinked bool `json:"googleCalendarLinked"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateShiftHoursRequest запрос на обновление часов смены
type UpdateShiftHoursRequest struct {
	Shift       string `json:"shift"`       // morning | afternoon
	OpeningTime string `json:"openingTime"` // "HH:MM"
	ClosingTime string `json:"closingTime"` // "HH:MM"
}

// FromDomainProfile конвертирует доменный профиль в response-модель
func FromDomainProfile(p *domain.ShopProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:                   p.ID,
		ShopTitle:            p.ShopTitle,
		OwnerEmail:           p.OwnerEmail,
		Phone:                p.Phone,
		PrimaryColor:         p.PrimaryColor,
		SecondaryColor:       p.SecondaryColor,
		PrimaryFont:          p.PrimaryFont,
		SecondaryFont:        p.SecondaryFont,
		DefaultOpeningTime:   p.DefaultOpeningTime.String(),
		DefaultClosingTime:   p.DefaultClosingTime.String(),
		MorningOpeningTime:   p.MorningOpeningTime.String(),
		MorningClosingTime:   p.MorningClosingTime.String(),
		AfternoonOpeningTime: p.AfternoonOpeningTime.String(),
		AfternoonClosingTime: p.AfternoonClosingTime.String(),
		GoogleCalendarLinked: p.HasGoogleCalendar(),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
