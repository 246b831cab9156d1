package get_day_schedule

import (
	"time"

	"github.com/drilan/barbershop-booking/pkg/types"
)

// Request модель запроса расписания на день
type Request struct {
	Date time.Time // Дата, на которую запрашивается расписание (без времени)

	// RequestToken непрозрачный токен клиента, возвращается в ответе без изменений.
	// Клиент сверяет его с токеном последнего отправленного запроса и отбрасывает
	// устаревшие ответы, пришедшие не по порядку
	RequestToken string
}

// Response модель ответа с расписанием на день
type Response struct {
	Date         time.Time // Дата, на которую строилось расписание
	Closed       bool      // Магазин закрыт в эту дату (выходной или праздник)
	RequestToken string    // Токен из запроса, без изменений
	Slots        []Slot    // Часовые слоты; пусто, если магазин закрыт
}

// Slot модель часового слота
type Slot struct {
	Time   types.TimeString // Время начала слота ("09:00")
	Status string           // available | pending | confirmed
}
