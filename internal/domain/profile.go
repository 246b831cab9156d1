package domain

import (
	"time"

	"github.com/drilan/barbershop-booking/pkg/types"
)

// Shift одна из двух дневных смен, настраиваемых независимо в админке
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// IsValid проверяет, что значение смены допустимо
func (s Shift) IsValid() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// ShopProfile singleton-запись с настройками магазина
// Ровно одна строка на магазин; часы по умолчанию используются резолвером,
// когда на дату нет переопределения
type ShopProfile struct {
	ID         int64
	ShopTitle  *string
	OwnerEmail string
	Phone      *string

	// Оформление (не влияет на расписание)
	PrimaryColor   *string
	SecondaryColor *string
	PrimaryFont    *string
	SecondaryFont  *string

	// Часы работы на весь день - используются при генерации слотов
	DefaultOpeningTime types.TimeString
	DefaultClosingTime types.TimeString

	// Часы по сменам - редактируются в админке независимо
	MorningOpeningTime   types.TimeString
	MorningClosingTime   types.TimeString
	AfternoonOpeningTime types.TimeString
	AfternoonClosingTime types.TimeString

	// Токены Google Calendar (только хранение после OAuth-привязки)
	GoogleAccessToken  *string
	GoogleRefreshToken *string
	GoogleTokenExpiry  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftHours возвращает пару открытие/закрытие для указанной смены
func (p *ShopProfile) ShiftHours(shift Shift) (types.TimeString, types.TimeString) {
	if shift == ShiftAfternoon {
		return p.AfternoonOpeningTime, p.AfternoonClosingTime
	}
	return p.MorningOpeningTime, p.MorningClosingTime
}

// HasGoogleCalendar возвращает true, если календарь привязан
func (p *ShopProfile) HasGoogleCalendar() bool {
	return p.GoogleAccessToken != nil && *p.GoogleAccessToken != ""
}
