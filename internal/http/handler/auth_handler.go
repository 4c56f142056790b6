package handler

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/arriendohq/arriendo/internal/config"
	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/security"
	"github.com/arriendohq/arriendo/internal/service"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	cfg     *config.Config
	svc     service.AuthServiceInterface
	userSvc service.UserServiceInterface
	cookies *security.CookieManager
}

func NewAuthHandler(cfg *config.Config, svc service.AuthServiceInterface, userSvc service.UserServiceInterface, cookies *security.CookieManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, svc: svc, userSvc: userSvc, cookies: cookies}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.svc.Register(service.RegisterInput{
		Email:    body.Email,
		Name:     body.Name,
		Password: body.Password,
		Role:     domain.Role(body.Role),
		Phone:    body.Phone,
	}, r.UserAgent(), clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword),
			errors.Is(err, service.ErrRoleNotAllowed):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case isConflictError(err):
			response.Error(w, r, http.StatusConflict, "email is already registered", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to register", nil)
		}
		return
	}

	h.setSessionCookies(w, result)
	observability.Audit(r, "auth.register", "user_id", result.User.ID, "role", result.User.Role)
	response.JSON(w, r, http.StatusCreated, result)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.svc.Login(body.Email, body.Password, r.UserAgent(), clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		case errors.Is(err, service.ErrAccountSuspended):
			response.Error(w, r, http.StatusForbidden, "account is suspended", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to log in", nil)
		}
		return
	}

	h.setSessionCookies(w, result)
	observability.Audit(r, "auth.login", "user_id", result.User.ID)
	response.JSON(w, r, http.StatusOK, result)
}

// GoogleLoginURL hands the frontend the provider consent URL. The state value
// is pinned in a short-lived cookie and checked again on callback.
func (h *AuthHandler) GoogleLoginURL(w http.ResponseWriter, r *http.Request) {
	state := randomState()
	url := h.svc.GoogleLoginURL(state)
	if url == "" {
		response.Error(w, r, http.StatusServiceUnavailable, "google auth is disabled", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/api/v1/auth",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	response.JSON(w, r, http.StatusOK, map[string]string{"url": url})
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" || state != security.GetCookie(r, oauthStateCookie) {
		response.Error(w, r, http.StatusBadRequest, "oauth state mismatch", nil)
		return
	}
	code := r.URL.Query().Get("code")
	if code == "" {
		response.Error(w, r, http.StatusBadRequest, "missing authorization code", nil)
		return
	}

	result, err := h.svc.LoginWithGoogleCode(code, r.UserAgent(), clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoogleAuthDisabled):
			response.Error(w, r, http.StatusServiceUnavailable, "google auth is disabled", nil)
		case errors.Is(err, service.ErrGoogleEmailUnverified):
			response.Error(w, r, http.StatusForbidden, "google account email is not verified", nil)
		case errors.Is(err, service.ErrAccountSuspended):
			response.Error(w, r, http.StatusForbidden, "account is suspended", nil)
		default:
			response.Error(w, r, http.StatusUnauthorized, "google sign-in failed", nil)
		}
		return
	}

	h.setSessionCookies(w, result)
	observability.Audit(r, "auth.login_google", "user_id", result.User.ID)
	response.JSON(w, r, http.StatusOK, result)
}

// Refresh rotates the refresh token. The old token is revoked before the new
// pair is issued, so a replayed token always fails.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := security.GetCookie(r, "refresh_token")
	if refreshToken == "" {
		observability.RecordAuthRefresh(r.Context(), "missing")
		response.Error(w, r, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	result, err := h.svc.Refresh(refreshToken, r.UserAgent(), clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound),
			errors.Is(err, service.ErrInvalidCredentials):
			h.cookies.Clear(w)
			response.Error(w, r, http.StatusUnauthorized, "invalid refresh token", nil)
		case errors.Is(err, service.ErrAccountSuspended):
			h.cookies.Clear(w)
			response.Error(w, r, http.StatusForbidden, "account is suspended", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to refresh session", nil)
		}
		return
	}

	h.setSessionCookies(w, result)
	response.JSON(w, r, http.StatusOK, result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	if err := h.svc.Logout(caller.ID); err != nil {
		observability.RecordAuthLogout(r.Context(), "error")
		response.Error(w, r, http.StatusInternalServerError, "failed to log out", nil)
		return
	}
	observability.RecordAuthLogout(r.Context(), "success")
	h.cookies.Clear(w)
	observability.Audit(r, "auth.logout", "user_id", caller.ID)
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	user, err := h.userSvc.GetByID(r.Context(), caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(w, r, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, user)
}

func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	user, err := h.userSvc.UpdateProfile(r.Context(), caller.ID, service.UpdateProfileInput{Name: body.Name, Phone: body.Phone})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNoUpdates):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrUserNotFound):
			response.Error(w, r, http.StatusNotFound, "user not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to update profile", nil)
		}
		return
	}
	observability.Audit(r, "user.profile_updated", "user_id", caller.ID)
	response.JSON(w, r, http.StatusOK, user)
}

// ChangePassword revokes every session on success, so the client must log in
// again with the new password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.svc.ChangePassword(caller.ID, body.CurrentPassword, body.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(w, r, http.StatusUnauthorized, "current password is incorrect", nil)
		case errors.Is(err, service.ErrWeakPassword):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to change password", nil)
		}
		return
	}

	h.cookies.Clear(w)
	observability.Audit(r, "auth.password_changed", "user_id", caller.ID)
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "password changed, please log in again"})
}

func (h *AuthHandler) setSessionCookies(w http.ResponseWriter, result *service.LoginResult) {
	h.cookies.SetAccessToken(w, result.AccessToken, h.cfg.JWTAccessTTL)
	h.cookies.SetRefreshToken(w, result.RefreshToken, h.cfg.JWTRefreshTTL)
	h.cookies.SetCSRFToken(w, result.CSRFToken, h.cfg.JWTRefreshTTL)
}

func randomState() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}
