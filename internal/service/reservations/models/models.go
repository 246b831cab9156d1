package models

import (
	"fmt"
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
)

// ReservationResponse модель брони для отдачи наружу
type ReservationResponse struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"userId"`
	UserEmail          string     `json:"userEmail"`
	Date               time.Time  `json:"date"`
	StartHour          string     `json:"startHour"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ReservationListResponse список броней
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// GetUserReservationsRequest запрос истории броней пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"` // Опциональный фильтр по статусу
}

// CancelReservationRequest запрос на отмену брони
type CancelReservationRequest struct {
	UserID  int64  `json:"userId"`
	IsAdmin bool   `json:"-"`
	Reason  string `json:"cancellationReason"`
}

// FromDomainReservation конвертирует доменную бронь в response-модель
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		UserEmail:          r.UserEmail,
		Date:               r.ReservationDate,
		StartHour:          r.StartHour.String(),
		Status:             string(r.Status),
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных броней
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, len(reservations))
	for i, r := range reservations {
		result[i] = FromDomainReservation(r)
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

// ToDomainReservationStatus конвертирует строку в статус сохраненной брони
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !domain.IsValidStoredStatus(status) {
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
	return status, nil
}
