package list_schedule_overrides

import (
	"errors"
	"net/http"

	"github.com/drilan/barbershop-booking/internal/api/handlers"
	"github.com/drilan/barbershop-booking/internal/service/schedule"
	"github.com/drilan/barbershop-booking/internal/service/schedule/models"
)

const (
	msgInvalidInterval = "некорректный интервал дат, ожидается from и to в формате YYYY-MM-DD"
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

// ListOverridesResponse HTTP response model
type ListOverridesResponse struct {
	Overrides []*models.OverrideResponse `json:"overrides"`
	Total     int                        `json:"total"`
}

// Handle GET /api/v1/admin/schedule?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListOverridesRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}

	result, err := h.service.ListOverrides(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /admin/schedule - Invalid interval: from=%q, to=%q", req.From, req.To)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /admin/schedule - Failed to list overrides: from=%s, to=%s, error=%v",
				req.From, req.To, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/schedule - Retrieved %d override(s): from=%s, to=%s", len(result), req.From, req.To)
	handlers.RespondJSON(w, http.StatusOK, &ListOverridesResponse{
		Overrides: result,
		Total:     len(result),
	})
}
