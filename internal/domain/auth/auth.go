package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionTTL is the normal session lifetime.
	SessionTTL = 24 * time.Hour
	// RememberTTL applies when the user ticks "remember me".
	RememberTTL = 30 * 24 * time.Hour
	// ResetTTL bounds password-reset links.
	ResetTTL = 10 * time.Minute

	resetAction = "reset-password"
)

var (
	// ErrTokenExpired signals the caller to clear the stored credential.
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Snapshot is the account view embedded in session tokens.
type Snapshot struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	ProfileURL string   `json:"profileUrl,omitempty"`
	EmployeeID string   `json:"employeeId,omitempty"`
	Roles      []string `json:"roles"`
}

type SessionClaims struct {
	Account  Snapshot `json:"user"`
	Remember bool     `json:"isRemembered"`
	jwt.RegisteredClaims
}

type ResetClaims struct {
	EmailID string `json:"emailId"`
	Action  string `json:"action"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// GenerateSessionToken signs an HS256 token holding the account snapshot
// and the remember flag. Expiry is 24h, or 30 days with remember.
func GenerateSessionToken(secret string, account Snapshot, remember bool) (string, time.Time, error) {
	ttl := SessionTTL
	if remember {
		ttl = RememberTTL
	}
	expires := time.Now().Add(ttl)
	claims := SessionClaims{
		Account:  account,
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// ParseSessionToken verifies signature and expiry. An expired token is
// reported as ErrTokenExpired so callers can clear the stored cookie.
func ParseSessionToken(secret, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, keyFunc(secret))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateResetToken signs a short-lived token tied to the reset action.
func GenerateResetToken(secret, email string) (string, error) {
	claims := ResetClaims{
		EmailID: email,
		Action:  resetAction,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ResetTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseResetToken(secret, tokenString string) (*ResetClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, keyFunc(secret))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid || claims.Action != resetAction {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func keyFunc(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}
}
