package middleware

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/hkdf"
)

// SessionName is the cookie that carries the signed and encrypted session.
const SessionName = "movielist-session"

// NewSessionStore builds a cookie store keyed from secret. Separate signing
// and encryption keys are derived with HKDF so a single SECRET_KEY is enough.
func NewSessionStore(secret string, secure bool) (*sessions.CookieStore, error) {
	hashKey, err := deriveKey(secret, "movielist session signing", 64)
	if err != nil {
		return nil, err
	}
	blockKey, err := deriveKey(secret, "movielist session encryption", 32)
	if err != nil {
		return nil, err
	}

	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store, nil
}

func deriveKey(secret, info string, n int) ([]byte, error) {
	key := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("deriving session key: %w", err)
	}
	return key, nil
}
