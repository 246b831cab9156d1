package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки почты через SendGrid v3 Mail Send API
type Client struct {
	baseURL    string
	apiKey     string
	fromEmail  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента SendGrid
func NewClient(baseURL, apiKey, fromEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type emailAddress struct {
	Email string `json:"email"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

// Send отправляет одно письмо всем получателям
// Дубликаты в списке получателей схлопываются: SendGrid отклоняет
// personalization с повторяющимися адресами
func (c *Client) Send(ctx context.Context, to []string, subject, body string) error {
	recipients := dedupeRecipients(to)
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	addresses := make([]emailAddress, 0, len(recipients))
	for _, email := range recipients {
		addresses = append(addresses, emailAddress{Email: email})
	}

	payload := mailRequest{
		Personalizations: []personalization{{To: addresses}},
		From:             emailAddress{Email: c.fromEmail},
		Subject:          subject,
		Content: []mailContent{{
			Type:  "text/plain",
			Value: body,
		}},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v3/mail/send"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// SendGrid отвечает 202 Accepted на успешную постановку письма в очередь
	if resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Send: sendgrid rejected mail: status=%d, body=%s", resp.StatusCode, string(respBody))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	c.log.Info("Send: mail accepted for %d recipient(s), subject=%q", len(recipients), subject)
	return nil
}

// dedupeRecipients убирает дубликаты, сохраняя порядок первых вхождений
func dedupeRecipients(to []string) []string {
	seen := make(map[string]struct{}, len(to))
	result := make([]string, 0, len(to))
	for _, email := range to {
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		result = append(result, email)
	}
	return result
}
