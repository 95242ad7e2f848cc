package middleware

import (
	"context"
	"net/http"
	"time"

	"peoplehub/internal/domain/auth"
	"peoplehub/internal/transport/http/api"
)

// SessionCookie is the single signed session cookie.
const SessionCookie = "auth-token"

type ctxKey string

const ctxKeyAccount ctxKey = "account"

// Session resolves the cookie into an account snapshot. Invalid or
// expired tokens are treated as anonymous and the cookie is cleared so
// the client drops the stale credential.
func Session(secret string, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				http.SetCookie(w, ExpiredSessionCookie(secure))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAccount, claims.Account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth gates protected routes: anonymous requests get 401 and the
// SPA redirects to the public entry.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetAccount(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetAccount(ctx context.Context) (auth.Snapshot, bool) {
	account, ok := ctx.Value(ctxKeyAccount).(auth.Snapshot)
	return account, ok
}

// NewSessionCookie builds the httpOnly, strict-same-site session cookie.
func NewSessionCookie(token string, expires time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
