package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"peoplehub/internal/domain/auth"
)

const testSecret = "test-secret"

func sessionRequest(t *testing.T, cookie string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	return req
}

func TestSessionResolvesValidCookie(t *testing.T) {
	token, _, err := auth.GenerateSessionToken(testSecret, auth.Snapshot{ID: "u1", Email: "asha@example.com"}, false)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	var seen auth.Snapshot
	var ok bool
	handler := Session(testSecret, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, ok = GetAccount(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), sessionRequest(t, token))
	if !ok {
		t.Fatal("expected account in context")
	}
	if seen.ID != "u1" || seen.Email != "asha@example.com" {
		t.Fatalf("account mismatch: %+v", seen)
	}
}

func TestSessionIgnoresMissingCookie(t *testing.T) {
	handler := Session(testSecret, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetAccount(r.Context()); ok {
			t.Fatal("anonymous request must not carry an account")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), sessionRequest(t, ""))
}

func TestSessionClearsExpiredCookie(t *testing.T) {
	claims := auth.SessionClaims{
		Account: auth.Snapshot{ID: "u1"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	rec := httptest.NewRecorder()
	handler := Session(testSecret, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetAccount(r.Context()); ok {
			t.Fatal("expired token must not resolve to an account")
		}
	}))
	handler.ServeHTTP(rec, sessionRequest(t, token))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie || cookies[0].MaxAge != -1 {
		t.Fatalf("expected a clearing cookie, got %v", cookies)
	}
}

func TestSessionRejectsTamperedToken(t *testing.T) {
	token, _, err := auth.GenerateSessionToken("other-secret", auth.Snapshot{ID: "u1"}, false)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	handler := Session(testSecret, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetAccount(r.Context()); ok {
			t.Fatal("foreign-signed token must not resolve to an account")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), sessionRequest(t, token))
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(rec, sessionRequest(t, ""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: got %d want 401", rec.Code)
	}

	token, _, err := auth.GenerateSessionToken(testSecret, auth.Snapshot{ID: "u1"}, false)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	rec = httptest.NewRecorder()
	Session(testSecret, false)(RequireAuth(next)).ServeHTTP(rec, sessionRequest(t, token))
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated: got %d want 200", rec.Code)
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	expires := time.Now().Add(auth.SessionTTL)
	cookie := NewSessionCookie("tok", expires, true)

	if cookie.Name != SessionCookie || cookie.Value != "tok" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie attributes wrong: %+v", cookie)
	}

	dev := NewSessionCookie("tok", expires, false)
	if dev.Secure {
		t.Fatal("secure must be off outside production")
	}
}
