package googleauth

import "errors"

var (
	// ErrNotConfigured возвращается, когда клиент не настроен (нет client id/secret)
	ErrNotConfigured = errors.New("googleauth client: oauth is not configured")

	// ErrExchangeFailed возвращается при ошибке обмена кода на токены
	ErrExchangeFailed = errors.New("googleauth client: code exchange failed")
)
