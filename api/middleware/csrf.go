package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	// CSRFField is the hidden form field every POST form must carry.
	CSRFField = "csrf_token"
	// CSRFHeader is accepted in place of the form field.
	CSRFHeader = "X-CSRF-Token"
	// ContextKeyCSRFToken is the gin context key holding the session's token.
	ContextKeyCSRFToken = "csrf_token"

	sessionKeyCSRF = "csrf"
)

// CSRF loads the session, issues an anti-forgery token when the session has
// none, and rejects unsafe requests whose submitted token does not match.
func CSRF(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A cookie that fails to decode (rotated key, tampering) still yields
		// a fresh session, so the error is only logged.
		session, err := store.Get(c.Request, SessionName)
		if err != nil {
			slog.Debug("discarding undecodable session", "request_id", GetRequestID(c), "error", err)
		}

		token, _ := session.Values[sessionKeyCSRF].(string)
		if token == "" {
			token = base64.RawURLEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
			session.Values[sessionKeyCSRF] = token
			if err := session.Save(c.Request, c.Writer); err != nil {
				slog.Error("failed to save session", "request_id", GetRequestID(c), "error", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}
		c.Set(ContextKeyCSRFToken, token)

		if !isSafeMethod(c.Request.Method) {
			submitted := c.PostForm(CSRFField)
			if submitted == "" {
				submitted = c.GetHeader(CSRFHeader)
			}
			if subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
				slog.Warn("csrf token mismatch", "request_id", GetRequestID(c), "path", c.Request.URL.Path)
				c.String(http.StatusForbidden, "The CSRF token is missing or invalid.")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// CSRFToken returns the token CSRF stored for the current request.
func CSRFToken(c *gin.Context) string {
	return c.GetString(ContextKeyCSRFToken)
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
