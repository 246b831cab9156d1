package list_schedule_overrides

import (
	"context"

	"github.com/drilan/barbershop-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	ListOverrides(ctx context.Context, req *models.ListOverridesRequest) ([]*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
