package update_shop_hours

import (
	"context"

	"github.com/drilan/barbershop-booking/internal/service/profile/models"
)

type ProfileService interface {
	UpdateShiftHours(ctx context.Context, req *models.UpdateShiftHoursRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
