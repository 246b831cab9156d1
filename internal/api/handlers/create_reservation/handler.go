package create_reservation

import (
	"errors"
	"net/http"

	"github.com/drilan/barbershop-booking/internal/api/handlers"
	"github.com/drilan/barbershop-booking/internal/api/middleware"
	createReservation "github.com/drilan/barbershop-booking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "требуется аутентификация"
	msgEmailRequired      = "требуется email пользователя"
	msgDateInPast         = "дата брони уже прошла"
	msgShopClosed         = "магазин закрыт в выбранную дату"
	msgInvalidSlot        = "выбранное время вне рабочих часов"
	msgSlotTaken          = "выбранный слот уже занят"
	msgNotificationFailed = "не удалось отправить подтверждение, бронь отменена"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	if identity.Email == "" {
		h.logger.Warn("POST /reservations - Missing user email: user_id=%d", identity.UserID)
		handlers.RespondBadRequest(w, msgEmailRequired)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity.UserID, identity.Email)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: user_id=%d, date=%s, hour=%s",
				identity.UserID, req.Date, req.StartHour)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrShopClosed):
			h.logger.Warn("POST /reservations - Shop closed: user_id=%d, date=%s", identity.UserID, req.Date)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in past: user_id=%d, date=%s", identity.UserID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid slot: user_id=%d, date=%s, hour=%s",
				identity.UserID, req.Date, req.StartHour)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createReservation.ErrNotificationFailed):
			h.logger.Error("POST /reservations - Notification failed, reservation rolled back: user_id=%d, date=%s, hour=%s",
				identity.UserID, req.Date, req.StartHour)
			handlers.RespondError(w, http.StatusBadGateway, msgNotificationFailed)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, date=%s, hour=%s",
		result.ID, identity.UserID, req.Date, req.StartHour)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
