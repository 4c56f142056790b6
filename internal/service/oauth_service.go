package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/arriendohq/arriendo/internal/config"
	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
)

var ErrGoogleEmailUnverified = errors.New("google account email is not verified")

type OAuthService struct {
	conf     *oauth2.Config
	userRepo repository.UserRepository
}

type googleUserInfo struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

func NewOAuthService(cfg *config.Config, userRepo repository.UserRepository) *OAuthService {
	return &OAuthService{
		conf: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userRepo: userRepo,
	}
}

func (s *OAuthService) LoginURL(state string) string {
	return s.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// HandleGoogleCallback exchanges the code, fetches the profile and maps it to
// a local account. New Google users land as tenants; any other role is
// granted by an admin afterwards.
func (s *OAuthService) HandleGoogleCallback(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange google code: %w", err)
	}

	client := s.conf.Client(ctx, token)
	resp, err := client.Get("https://openidconnect.googleapis.com/v1/userinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch google userinfo: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode google userinfo: %w", err)
	}
	if !info.EmailVerified {
		return nil, ErrGoogleEmailUnverified
	}

	user, err := s.userRepo.FindByEmail(info.Email)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, repository.ErrUserNotFound):
		user = &domain.User{Email: info.Email, Name: info.Name, Role: domain.RoleTenant, Status: domain.UserStatusActive}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	default:
		return nil, err
	}
}
