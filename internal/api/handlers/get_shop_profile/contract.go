package get_shop_profile

import (
	"context"

	"github.com/drilan/barbershop-booking/internal/service/profile/models"
)

type ProfileService interface {
	Get(ctx context.Context) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
