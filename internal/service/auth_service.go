package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/arriendohq/arriendo/internal/config"
	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/security"
)

var (
	ErrGoogleAuthDisabled = errors.New("google auth is disabled")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet policy requirements")
	ErrRoleNotAllowed     = errors.New("role cannot be self-assigned")
	ErrAccountSuspended   = errors.New("account is suspended")
)

var (
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
	lowercaseRe = regexp.MustCompile(`[a-z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
	specialRe   = regexp.MustCompile(`[^A-Za-z0-9]`)
)

type AuthService struct {
	cfg      *config.Config
	oauthSvc *OAuthService
	tokenSvc *TokenService
	userRepo repository.UserRepository
}

type LoginResult struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"-"`
	RefreshToken string       `json:"-"`
	CSRFToken    string       `json:"csrf_token,omitempty"`
	ExpiresAt    time.Time    `json:"expires_at,omitempty"`
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
	Phone    string
}

func NewAuthService(cfg *config.Config, oauthSvc *OAuthService, tokenSvc *TokenService, userRepo repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, oauthSvc: oauthSvc, tokenSvc: tokenSvc, userRepo: userRepo}
}

func (s *AuthService) GoogleLoginURL(state string) string {
	if !s.cfg.AuthGoogleEnabled {
		return ""
	}
	return s.oauthSvc.LoginURL(state)
}

func (s *AuthService) LoginWithGoogleCode(code, ua, ip string) (*LoginResult, error) {
	if !s.cfg.AuthGoogleEnabled {
		return nil, ErrGoogleAuthDisabled
	}
	user, err := s.oauthSvc.HandleGoogleCallback(context.Background(), code)
	if err != nil {
		observability.RecordAuthLogin(context.Background(), "google", "error")
		return nil, err
	}
	if err := s.promoteBootstrapAccounts(user); err != nil {
		return nil, err
	}
	result, err := s.finishLogin(user, ua, ip)
	if err != nil {
		observability.RecordAuthLogin(context.Background(), "google", "error")
		return nil, err
	}
	observability.RecordAuthLogin(context.Background(), "google", "success")
	return result, nil
}

func (s *AuthService) Register(input RegisterInput, ua, ip string) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	name := strings.TrimSpace(input.Name)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !domain.CanSelfRegister(input.Role) {
		return nil, ErrRoleNotAllowed
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		Name:         name,
		Role:         input.Role,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Status:       domain.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := s.promoteBootstrapAccounts(user); err != nil {
		return nil, err
	}
	return s.finishLogin(user, ua, ip)
}

func (s *AuthService) Login(email, password, ua, ip string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		observability.RecordAuthLogin(context.Background(), "local", "invalid")
		return nil, ErrInvalidCredentials
	}
	ok, err := security.VerifyPassword(user.PasswordHash, password)
	if err != nil || !ok {
		observability.RecordAuthLogin(context.Background(), "local", "invalid")
		return nil, ErrInvalidCredentials
	}
	result, err := s.finishLogin(user, ua, ip)
	if err != nil {
		observability.RecordAuthLogin(context.Background(), "local", "error")
		return nil, err
	}
	observability.RecordAuthLogin(context.Background(), "local", "success")
	return result, nil
}

func (s *AuthService) Refresh(refreshToken, ua, ip string) (*LoginResult, error) {
	access, newRefresh, csrf, uid, err := s.tokenSvc.Rotate(refreshToken, func(id uint) (*domain.User, error) {
		return s.userRepo.FindByID(id)
	}, ua, ip)
	if err != nil {
		observability.RecordAuthRefresh(context.Background(), "invalid")
		return nil, err
	}
	user, err := s.userRepo.FindByID(uid)
	if err != nil {
		observability.RecordAuthRefresh(context.Background(), "error")
		return nil, err
	}
	observability.RecordAuthRefresh(context.Background(), "success")
	return &LoginResult{User: user, AccessToken: access, RefreshToken: newRefresh, CSRFToken: csrf, ExpiresAt: time.Now().Add(s.cfg.JWTAccessTTL)}, nil
}

func (s *AuthService) Logout(userID uint) error {
	err := s.tokenSvc.RevokeAll(userID, "logout")
	if err != nil {
		observability.RecordAuthLogout(context.Background(), "error")
		return err
	}
	observability.RecordAuthLogout(context.Background(), "success")
	return nil
}

func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrInvalidCredentials
	}
	ok, err := security.VerifyPassword(user.PasswordHash, currentPassword)
	if err != nil || !ok {
		return ErrInvalidCredentials
	}
	if currentPassword == newPassword {
		return fmt.Errorf("new password must differ from current password")
	}
	newHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.Update(userID, map[string]any{"password_hash": newHash}); err != nil {
		return err
	}
	return s.tokenSvc.RevokeAll(userID, "password_change")
}

func (s *AuthService) ParseUserID(subject string) (uint, error) {
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user subject")
	}
	return uint(id), nil
}

func (s *AuthService) finishLogin(user *domain.User, ua, ip string) (*LoginResult, error) {
	if user.Status == domain.UserStatusSuspended {
		return nil, ErrAccountSuspended
	}
	access, refresh, csrf, err := s.tokenSvc.Issue(user, ua, ip)
	if err != nil {
		return nil, err
	}
	_ = s.userRepo.TouchLastLogin(user.ID, time.Now())
	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh, CSRFToken: csrf, ExpiresAt: time.Now().Add(s.cfg.JWTAccessTTL)}, nil
}

// promoteBootstrapAccounts elevates the configured operator emails on their
// first login so a fresh deployment has an admin without manual SQL.
func (s *AuthService) promoteBootstrapAccounts(user *domain.User) error {
	email := strings.ToLower(user.Email)
	var target domain.Role
	switch email {
	case s.cfg.BootstrapAdminEmail:
		target = domain.RoleAdmin
	case s.cfg.BootstrapSupportEmail:
		target = domain.RoleSupport
	default:
		return nil
	}
	if user.Role == target {
		return nil
	}
	if err := s.userRepo.Update(user.ID, map[string]any{"role": target}); err != nil {
		return err
	}
	user.Role = target
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 12 || !uppercaseRe.MatchString(password) ||
		!lowercaseRe.MatchString(password) || !digitRe.MatchString(password) || !specialRe.MatchString(password) {
		return ErrWeakPassword
	}
	return nil
}
