package create_reservation

import (
	"time"

	"github.com/drilan/barbershop-booking/internal/domain"
	createReservation "github.com/drilan/barbershop-booking/internal/usecase/create_reservation"
	"github.com/drilan/barbershop-booking/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date      string  `json:"date"`      // "2026-09-01"
	StartHour string  `json:"startHour"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	UserEmail string  `json:"userEmail"`
	Date      string  `json:"date"`
	StartHour string  `json:"startHour"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64, userEmail string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startHour, err := types.NewTimeStringFromString(r.StartHour)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		UserEmail: userEmail,
		Date:      date,
		StartHour: startHour,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		UserEmail: resp.UserEmail,
		Date:      resp.Date.Format(domain.DateFormat),
		StartHour: resp.StartHour.String(),
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
