package authhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"peoplehub/internal/domain/auth"
	"peoplehub/internal/platform/email"
	"peoplehub/internal/transport/http/api"
	"peoplehub/internal/transport/http/middleware"
	"peoplehub/internal/validation"
)

type Handler struct {
	Store   *auth.Store
	Secret  string
	Mailer  email.Mailer
	BaseURL string
	From    string
	Secure  bool
}

func NewHandler(store *auth.Store, secret string, mailer email.Mailer, baseURL, from string, secure bool) *Handler {
	return &Handler{Store: store, Secret: secret, Mailer: mailer, BaseURL: baseURL, From: from, Secure: secure}
}

type resetRequest struct {
	Token string `json:"token"`
	validation.ResetPassword
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload validation.Login
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if issues := payload.Validate(); len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "invalid login request", issues, reqID)
		return
	}

	account, hash, err := h.Store.FindActiveByEmail(r.Context(), payload.Email)
	if err != nil {
		// Same response for unknown email and wrong password.
		if errors.Is(err, auth.ErrAccountNotFound) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
			return
		}
		slog.Error("login lookup failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
		return
	}

	if err := auth.CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}

	token, expires, err := auth.GenerateSessionToken(h.Secret, account, payload.Remember)
	if err != nil {
		slog.Error("session token failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to start session", reqID)
		return
	}

	http.SetCookie(w, middleware.NewSessionCookie(token, expires, h.Secure))
	api.Success(w, map[string]any{
		"user":      account,
		"expiresAt": expires,
	}, reqID)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, middleware.ExpiredSessionCookie(h.Secure))
	api.Success(w, map[string]string{"status": "logged_out"}, reqID(r))
}

// HandleMe returns the authenticated account snapshot, letting the SPA
// redirect logged-in users away from public-only routes.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.GetAccount(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID(r))
		return
	}
	api.Success(w, account, reqID(r))
}

func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload validation.ForgotPassword
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID(r))
		return
	}
	if issues := payload.Validate(); len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "invalid request", issues, reqID(r))
		return
	}

	if _, _, err := h.Store.PasswordHashByEmail(r.Context(), payload.EmailID); err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			api.Fail(w, http.StatusNotFound, "unknown_email", "email is not registered", reqID(r))
			return
		}
		slog.Error("forgot-password lookup failed", "err", err, "requestId", reqID(r))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID(r))
		return
	}

	token, err := auth.GenerateResetToken(h.Secret, payload.EmailID)
	if err != nil {
		slog.Error("reset token failed", "err", err, "requestId", reqID(r))
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue reset token", reqID(r))
		return
	}

	link := buildResetLink(h.BaseURL, token)
	body := buildResetEmailMessage(link)
	if err := h.Mailer.Send(r.Context(), h.From, payload.EmailID, "Password reset", body); err != nil {
		slog.Error("reset mail failed", "err", err, "requestId", reqID(r))
		api.Fail(w, http.StatusInternalServerError, "mail_error", "failed to send reset email", reqID(r))
		return
	}

	api.Success(w, map[string]string{"status": "reset_email_sent"}, reqID(r))
}

func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var payload resetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID(r))
		return
	}
	if issues := payload.ResetPassword.Validate(); len(issues) > 0 {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "invalid request", issues, reqID(r))
		return
	}

	claims, err := auth.ParseResetToken(h.Secret, payload.Token)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_token", "invalid or expired reset token", reqID(r))
		return
	}

	userID, hash, err := h.Store.PasswordHashByEmail(r.Context(), claims.EmailID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_token", "invalid or expired reset token", reqID(r))
		return
	}

	if auth.CheckPassword(hash, payload.NewPassword) == nil {
		api.Fail(w, http.StatusBadRequest, "password_reused", "new password cannot be the same as the old password", reqID(r))
		return
	}

	newHash, err := auth.HashPassword(payload.NewPassword)
	if err != nil {
		slog.Error("hash failed", "err", err, "requestId", reqID(r))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID(r))
		return
	}
	if err := h.Store.UpdatePassword(r.Context(), userID, newHash); err != nil {
		slog.Error("password update failed", "err", err, "requestId", reqID(r))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID(r))
		return
	}

	api.Success(w, map[string]string{"status": "password_updated"}, reqID(r))
}

func buildResetLink(baseURL, token string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		parsed = &url.URL{Scheme: "http", Host: "localhost:8080"}
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/reset-password"
	parsed.RawQuery = url.Values{"token": {token}}.Encode()
	return parsed.String()
}

func buildResetEmailMessage(link string) string {
	return fmt.Sprintf(
		"A password reset was requested for your account.\r\n\r\n"+
			"Open the link below to choose a new password. The link expires in %d minute(s).\r\n\r\n%s\r\n\r\n"+
			"If you did not request this, you can ignore this email.",
		int(auth.ResetTTL.Minutes()), link)
}

func reqID(r *http.Request) string {
	return middleware.GetRequestID(r.Context())
}
