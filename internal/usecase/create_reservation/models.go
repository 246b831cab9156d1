package create_reservation

import (
	"time"

	"github.com/drilan/barbershop-booking/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	UserID    int64            // ID пользователя из auth-слоя
	UserEmail string           // Email пользователя - получатель подтверждения
	Date      time.Time        // Дата брони (без времени)
	StartHour types.TimeString // Час начала слота ("10:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        int64
	UserID    int64
	UserEmail string
	Date      time.Time
	StartHour types.TimeString
	Status    string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
