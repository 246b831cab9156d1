package googleauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// CalendarEventsScope область доступа для управления событиями Google Calendar
const CalendarEventsScope = "https://www.googleapis.com/auth/calendar.events"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент OAuth-авторизации Google Calendar
type Client struct {
	config *oauth2.Config
	log    Logger
}

// NewClient создает новый экземпляр OAuth-клиента Google
func NewClient(clientID, clientSecret, redirectURL string, log Logger) *Client {
	return &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{CalendarEventsScope},
			Endpoint:     google.Endpoint,
		},
		log: log,
	}
}

// IsConfigured возвращает true, если заданы client id и secret
func (c *Client) IsConfigured() bool {
	return c.config.ClientID != "" && c.config.ClientSecret != ""
}

// AuthURL возвращает URL страницы согласия Google
// offline-доступ нужен для получения refresh-токена;
// prompt=consent гарантирует его выдачу при повторной привязке
func (c *Client) AuthURL(state string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	url := c.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return url, nil
}

// Exchange обменивает authorization code на пару токенов
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		c.log.Error("Exchange: failed to exchange authorization code: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	c.log.Info("Exchange: google tokens acquired, expiry=%s", token.Expiry)
	return token, nil
}
