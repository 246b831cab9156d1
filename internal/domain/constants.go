package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения на входные данные
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Запасные часы работы на случай недоступности профиля магазина
// Резолвер использует их, чтобы отрисовка расписания никогда не блокировалась
const (
	FallbackOpeningTime = "08:00"
	FallbackClosingTime = "20:00"
)

// CancelledStatuses статусы отмененных броней
// Брони в этих статусах не занимают слот и не видны в расписании
var CancelledStatuses = []ReservationStatus{
	StatusCancelledByUser,
	StatusCancelledByShop,
}

// ActiveStatuses статусы активных броней
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
