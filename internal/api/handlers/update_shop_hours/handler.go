package update_shop_hours

import (
	"errors"
	"net/http"

	"github.com/drilan/barbershop-booking/internal/api/handlers"
	"github.com/drilan/barbershop-booking/internal/service/profile"
	"github.com/drilan/barbershop-booking/internal/service/profile/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidShift       = "некорректная смена, ожидается morning или afternoon"
	msgInvalidHours       = "некорректные часы работы, ожидается HH:MM и открытие не позже закрытия"
	msgNotFound           = "профиль магазина не найден"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/profile/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateShiftHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/profile/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateShiftHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrInvalidShift):
			h.logger.Warn("PUT /admin/profile/hours - Invalid shift: shift=%q", req.Shift)
			handlers.RespondBadRequest(w, msgInvalidShift)

		case errors.Is(err, profile.ErrInvalidHours):
			h.logger.Warn("PUT /admin/profile/hours - Invalid hours: opening=%q, closing=%q",
				req.OpeningTime, req.ClosingTime)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, profile.ErrProfileNotFound):
			h.logger.Warn("PUT /admin/profile/hours - Profile not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/profile/hours - Failed to update hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/profile/hours - Hours updated: shift=%s, opening=%s, closing=%s",
		req.Shift, req.OpeningTime, req.ClosingTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
