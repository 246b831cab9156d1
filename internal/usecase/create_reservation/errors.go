package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается, когда дата брони в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrShopClosed возвращается, когда магазин закрыт в указанную дату
	ErrShopClosed = errors.New("create_reservation: shop is closed on this date")

	// ErrInvalidSlot возвращается, когда время начала не попадает в рабочие часы
	// или не совпадает с границей часа
	ErrInvalidSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotTaken возвращается, когда слот уже занят активной бронью
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrNotificationFailed возвращается, когда письма-подтверждения не доставлены.
	// Бронь при этом отменена компенсацией - слот снова свободен
	ErrNotificationFailed = errors.New("create_reservation: confirmation notification failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
