package get_shop_profile

import (
	"errors"
	"net/http"

	"github.com/drilan/barbershop-booking/internal/api/handlers"
	"github.com/drilan/barbershop-booking/internal/service/profile"
)

const (
	msgNotFound = "профиль магазина не найден"
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

// Handle GET /api/v1/admin/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrProfileNotFound):
			h.logger.Warn("GET /admin/profile - Profile not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/profile - Failed to get profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/profile - Profile retrieved: profile_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
