package delete_schedule_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/drilan/barbershop-booking/internal/api/handlers"
	"github.com/drilan/barbershop-booking/internal/service/schedule"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound    = "переопределение на эту дату не найдено"
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

// Handle DELETE /api/v1/admin/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rawDate := vars["date"]

	if err := h.service.DeleteOverride(r.Context(), rawDate); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("DELETE /admin/schedule/{date} - Invalid date: date=%q", rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrOverrideNotFound):
			h.logger.Warn("DELETE /admin/schedule/{date} - Override not found: date=%s", rawDate)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/schedule/{date} - Failed to delete override: date=%s, error=%v",
				rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/schedule/{date} - Override deleted: date=%s", rawDate)
	w.WriteHeader(http.StatusNoContent)
}
