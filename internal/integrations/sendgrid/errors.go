package sendgrid

import "errors"

var (
	// ErrNoRecipients возвращается, когда список получателей пуст
	ErrNoRecipients = errors.New("sendgrid client: no recipients")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sendgrid client: internal error")

	// ErrSendFailed возвращается, когда SendGrid отклонил отправку письма
	ErrSendFailed = errors.New("sendgrid client: send failed")
)
