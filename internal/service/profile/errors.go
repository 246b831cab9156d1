package profile

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль магазина не найден
	ErrProfileNotFound = errors.New("shop profile not found")

	// ErrInvalidShift возвращается при неизвестной смене
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidHours возвращается при некорректной паре открытие/закрытие
	ErrInvalidHours = errors.New("invalid opening/closing hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profile service: internal error")
)
