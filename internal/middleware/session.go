// Package middleware содержит HTTP middleware кассы кинотеатра.
package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

type contextKey string

const (
	patronKey    contextKey = "patron"
	sessionIDKey contextKey = "sessionID"
)

const (
	sessionCookieName = "patron_session"
	sessionCookieTTL  = 12 * time.Hour
)

// SessionMiddleware проверяет подписанный cookie сессии посетителя.
// Возраст посетителя нужен транзакции бронирования, поэтому он
// переносится в самом cookie и защищён подписью HMAC.
type SessionMiddleware struct {
	secretKey []byte
}

// NewSessionMiddleware создаёт middleware с указанным секретным ключом.
func NewSessionMiddleware(secret string) *SessionMiddleware {
	key := []byte(secret)
	if len(key) == 0 {
		randomKey := make([]byte, 32)
		if _, err := rand.Read(randomKey); err == nil {
			key = randomKey
		} else {
			key = []byte("default-secret-key")
		}
	}

	return &SessionMiddleware{
		secretKey: key,
	}
}

type sessionPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Middleware проверяет cookie сессии и добавляет посетителя в контекст запроса.
func (m *SessionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		patron, sessionID, ok := m.parseCookie(cookie.Value)
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), patronKey, patron)
		ctx = context.WithValue(ctx, sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetSessionCookie устанавливает cookie сессии для посетителя
// и возвращает идентификатор созданной сессии.
func (m *SessionMiddleware) SetSessionCookie(w http.ResponseWriter, patron *model.Patron) string {
	payload := sessionPayload{
		ID:   uuid.NewString(),
		Name: patron.Name,
		Age:  patron.Age,
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    m.sign(payload),
		Path:     "/",
		Expires:  time.Now().Add(sessionCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	http.SetCookie(w, cookie)
	return payload.ID
}

func (m *SessionMiddleware) sign(payload sessionPayload) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}

	mac := hmac.New(sha256.New, m.secretKey)
	mac.Write(data)
	signature := mac.Sum(nil)

	return base64.RawURLEncoding.EncodeToString(data) + "." + hex.EncodeToString(signature)
}

func (m *SessionMiddleware) parseCookie(cookieValue string) (*model.Patron, string, bool) {
	parts := strings.Split(cookieValue, ".")
	if len(parts) != 2 {
		return nil, "", false
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, "", false
	}

	signature, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, "", false
	}

	mac := hmac.New(sha256.New, m.secretKey)
	mac.Write(data)
	if !hmac.Equal(signature, mac.Sum(nil)) {
		return nil, "", false
	}

	var payload sessionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, "", false
	}

	return &model.Patron{Name: payload.Name, Age: payload.Age}, payload.ID, true
}

// GetPatronFromContext извлекает посетителя из контекста запроса.
func GetPatronFromContext(ctx context.Context) (*model.Patron, bool) {
	p, ok := ctx.Value(patronKey).(*model.Patron)
	return p, ok
}

// GetSessionIDFromContext извлекает идентификатор сессии из контекста запроса.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}
