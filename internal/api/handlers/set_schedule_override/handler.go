package set_schedule_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/drilan/barbershop-booking/internal/api/handlers"
	"github.com/drilan/barbershop-booking/internal/service/schedule"
	"github.com/drilan/barbershop-booking/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHours       = "некорректные часы работы, ожидается HH:MM и открытие не позже закрытия"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rawDate := vars["date"]

	var req models.SetOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Date = rawDate

	result, err := h.service.SetOverride(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("PUT /admin/schedule/{date} - Invalid date: date=%q", rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrInvalidHours):
			h.logger.Warn("PUT /admin/schedule/{date} - Invalid hours: date=%s, opening=%q, closing=%q",
				rawDate, req.OpeningTime, req.ClosingTime)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /admin/schedule/{date} - Failed to set override: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule/{date} - Override saved: date=%s, holiday=%t", rawDate, result.IsHoliday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
