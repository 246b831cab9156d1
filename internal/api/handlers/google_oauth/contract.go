package google_oauth

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

type AuthClient interface {
	AuthURL(state string) (string, error)
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

type ProfileService interface {
	StoreGoogleTokens(ctx context.Context, accessToken, refreshToken string, expiry time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
