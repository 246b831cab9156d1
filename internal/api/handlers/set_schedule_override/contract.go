package set_schedule_override

import (
	"context"

	"github.com/drilan/barbershop-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	SetOverride(ctx context.Context, req *models.SetOverrideRequest) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
