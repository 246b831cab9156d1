package domain

import (
	"time"

	"github.com/drilan/barbershop-booking/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	// StatusAvailable используется только в расписании (производный статус слота),
	// как статус сохраненной брони он никогда не встречается
	StatusAvailable       ReservationStatus = "available"
	StatusPending         ReservationStatus = "pending"
	StatusConfirmed       ReservationStatus = "confirmed"
	StatusCancelledByUser ReservationStatus = "cancelled_by_user"
	StatusCancelledByShop ReservationStatus = "cancelled_by_shop"
)

// Reservation represents one booked hourly slot
type Reservation struct {
	ID              int64
	UserID          int64
	UserEmail       string
	ReservationDate time.Time
	StartHour       types.TimeString
	Status          ReservationStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByUser && r.Status != StatusCancelledByShop
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByUser || r.Status == StatusCancelledByShop
}

// IsValidStoredStatus проверяет, что статус допустим для сохраненной брони
// StatusAvailable намеренно не входит в список
func IsValidStoredStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelledByUser, StatusCancelledByShop:
		return true
	default:
		return false
	}
}
