package google_oauth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/drilan/barbershop-booking/internal/api/handlers"
	"github.com/drilan/barbershop-booking/internal/integrations/googleauth"
)

const (
	msgNotConfigured  = "интеграция с Google Calendar не настроена"
	msgMissingCode    = "отсутствует код авторизации"
	msgInvalidState   = "некорректный state, начните привязку заново"
	msgExchangeFailed = "не удалось обменять код авторизации"
)

// stateCookie хранит CSRF-state между редиректом на Google и callback
const (
	stateCookie    = "google_oauth_state"
	stateCookieTTL = 10 * time.Minute
)

type Handler struct {
	authClient AuthClient
	profileSvc ProfileService
	logger     Logger
}

func NewHandler(authClient AuthClient, profileSvc ProfileService, logger Logger) *Handler {
	return &Handler{
		authClient: authClient,
		profileSvc: profileSvc,
		logger:     logger,
	}
}

// ConnectResponse HTTP response model
type ConnectResponse struct {
	AuthURL string `json:"authUrl"`
}

// HandleConnect GET /api/v1/admin/google/connect
// Возвращает URL страницы согласия Google и выставляет state-cookie
func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	state, err := generateState()
	if err != nil {
		h.logger.Error("GET /admin/google/connect - Failed to generate state: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	authURL, err := h.authClient.AuthURL(state)
	if err != nil {
		if errors.Is(err, googleauth.ErrNotConfigured) {
			h.logger.Warn("GET /admin/google/connect - OAuth is not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)
			return
		}
		h.logger.Error("GET /admin/google/connect - Failed to build auth URL: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("GET /admin/google/connect - Auth URL issued")
	handlers.RespondJSON(w, http.StatusOK, &ConnectResponse{AuthURL: authURL})
}

// HandleCallback GET /api/v1/admin/google/callback?code=...&state=...
// Обменивает код на токены и сохраняет их на профиле магазина
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	code := query.Get("code")
	if code == "" {
		h.logger.Warn("GET /admin/google/callback - Missing authorization code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != query.Get("state") {
		h.logger.Warn("GET /admin/google/callback - State mismatch")
		handlers.RespondBadRequest(w, msgInvalidState)
		return
	}

	token, err := h.authClient.Exchange(r.Context(), code)
	if err != nil {
		if errors.Is(err, googleauth.ErrNotConfigured) {
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)
			return
		}
		h.logger.Error("GET /admin/google/callback - Code exchange failed: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgExchangeFailed)
		return
	}

	if err := h.profileSvc.StoreGoogleTokens(r.Context(), token.AccessToken, token.RefreshToken, token.Expiry); err != nil {
		h.logger.Error("GET /admin/google/callback - Failed to store tokens: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Сбрасываем использованный state
	http.SetCookie(w, &http.Cookie{
		Name:   stateCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	h.logger.Info("GET /admin/google/callback - Google Calendar linked, expiry=%s", token.Expiry)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"googleCalendarLinked": true})
}

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
