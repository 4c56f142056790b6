package service

import (
	"errors"
	"testing"
	"time"

	"github.com/arriendohq/arriendo/internal/config"
	"github.com/arriendohq/arriendo/internal/domain"
	repogomock "github.com/arriendohq/arriendo/internal/repository/gomock"
	"github.com/arriendohq/arriendo/internal/security"
	"go.uber.org/mock/gomock"
)

func newAuthServiceForTest(t *testing.T, userRepo *repogomock.MockUserRepository, sessionRepo *repogomock.MockSessionRepository) *AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTAccessTTL:  15 * time.Minute,
		JWTRefreshTTL: 7 * 24 * time.Hour,
	}
	jwtMgr := security.NewJWTManager("arriendo-test", "arriendo-api", "access-secret-for-tests", "refresh-secret-for-tests")
	tokenSvc := NewTokenService(jwtMgr, sessionRepo, "pepper-for-tests", cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	return NewAuthService(cfg, nil, tokenSvc, userRepo)
}

func TestRegisterRejectsPrivilegedRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repogomock.NewMockUserRepository(ctrl)
	sessionRepo := repogomock.NewMockSessionRepository(ctrl)
	svc := newAuthServiceForTest(t, userRepo, sessionRepo)

	userRepo.EXPECT().Create(gomock.Any()).Times(0)

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSupport} {
		_, err := svc.Register(RegisterInput{
			Email:    "mallory@example.com",
			Name:     "Mallory",
			Password: "Str0ng!Passw0rd",
			Role:     role,
		}, "ua", "127.0.0.1")
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Errorf("role %s: expected ErrRoleNotAllowed, got %v", role, err)
		}
	}
}

func TestRegisterEnforcesPasswordPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repogomock.NewMockUserRepository(ctrl)
	sessionRepo := repogomock.NewMockSessionRepository(ctrl)
	svc := newAuthServiceForTest(t, userRepo, sessionRepo)

	userRepo.EXPECT().Create(gomock.Any()).Times(0)

	weak := []string{
		"short1!A",
		"nouppercase1!aaaa",
		"NOLOWERCASE1!AAAA",
		"NoDigitsHere!!aa",
		"NoSpecials12345aa",
	}
	for _, pw := range weak {
		_, err := svc.Register(RegisterInput{
			Email:    "carla@example.com",
			Name:     "Carla",
			Password: pw,
			Role:     domain.RoleOwner,
		}, "ua", "127.0.0.1")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("password %q: expected ErrWeakPassword, got %v", pw, err)
		}
	}
}

func TestRegisterCreatesUserAndIssuesTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repogomock.NewMockUserRepository(ctrl)
	sessionRepo := repogomock.NewMockSessionRepository(ctrl)
	svc := newAuthServiceForTest(t, userRepo, sessionRepo)

	userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		if u.Email != "carla@example.com" || u.Role != domain.RoleOwner || u.Status != domain.UserStatusActive {
			t.Errorf("unexpected user on create: %+v", u)
		}
		if u.PasswordHash == "" || u.PasswordHash == "Str0ng!Passw0rd" {
			t.Error("password must be stored hashed")
		}
		u.ID = 42
		return nil
	})
	sessionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *domain.Session) error {
		if s.UserID != 42 || s.RefreshTokenHash == "" {
			t.Errorf("unexpected session: %+v", s)
		}
		return nil
	})
	userRepo.EXPECT().TouchLastLogin(uint(42), gomock.Any()).Return(nil)

	result, err := svc.Register(RegisterInput{
		Email:    "Carla@Example.com",
		Name:     "Carla Rojas",
		Password: "Str0ng!Passw0rd",
		Role:     domain.RoleOwner,
	}, "ua", "127.0.0.1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" || result.CSRFToken == "" {
		t.Fatal("expected a full token set")
	}
	if result.User.Email != "carla@example.com" {
		t.Fatalf("email not normalized: %q", result.User.Email)
	}
}

func TestLoginRejectsBadPasswordWithoutLeakingWhich(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repogomock.NewMockUserRepository(ctrl)
	sessionRepo := repogomock.NewMockSessionRepository(ctrl)
	svc := newAuthServiceForTest(t, userRepo, sessionRepo)

	hash, err := security.HashPassword("Corr3ct!Horse#Battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	t.Run("unknown email", func(t *testing.T) {
		userRepo.EXPECT().FindByEmail("nobody@example.com").Return(nil, errors.New("not found"))
		if _, err := svc.Login("nobody@example.com", "whatever", "ua", "ip"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo.EXPECT().FindByEmail("carla@example.com").Return(&domain.User{
			ID: 1, Email: "carla@example.com", PasswordHash: hash, Status: domain.UserStatusActive,
		}, nil)
		if _, err := svc.Login("carla@example.com", "Wr0ng!Password#", "ua", "ip"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repogomock.NewMockUserRepository(ctrl)
	sessionRepo := repogomock.NewMockSessionRepository(ctrl)
	svc := newAuthServiceForTest(t, userRepo, sessionRepo)

	hash, err := security.HashPassword("Corr3ct!Horse#Battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	userRepo.EXPECT().FindByEmail("carla@example.com").Return(&domain.User{
		ID: 1, Email: "carla@example.com", PasswordHash: hash, Status: domain.UserStatusSuspended,
	}, nil)
	sessionRepo.EXPECT().Create(gomock.Any()).Times(0)

	if _, err := svc.Login("carla@example.com", "Corr3ct!Horse#Battery", "ua", "ip"); !errors.Is(err, ErrAccountSuspended) {
		t.Fatalf("expected ErrAccountSuspended, got %v", err)
	}
}

func TestRefreshRotationIsSingleUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repogomock.NewMockUserRepository(ctrl)
	sessionRepo := repogomock.NewMockSessionRepository(ctrl)
	svc := newAuthServiceForTest(t, userRepo, sessionRepo)

	user := &domain.User{ID: 7, Email: "carla@example.com", Role: domain.RoleOwner, Status: domain.UserStatusActive}

	var storedHash string
	sessionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *domain.Session) error {
		storedHash = s.RefreshTokenHash
		return nil
	}).Times(2)
	userRepo.EXPECT().TouchLastLogin(uint(7), gomock.Any()).Return(nil)

	access, refresh, _, err := svc.tokenSvc.Issue(user, "ua", "ip")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if access == "" {
		t.Fatal("expected an access token")
	}
	firstHash := storedHash

	sessionRepo.EXPECT().FindActiveByTokenHash(firstHash, gomock.Any()).Return(&domain.Session{ID: 3, UserID: 7}, nil)
	sessionRepo.EXPECT().Revoke(uint(3), gomock.Any()).Return(nil)
	userRepo.EXPECT().FindByID(uint(7)).Return(user, nil).Times(2)

	result, err := svc.Refresh(refresh, "ua", "ip")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if result.RefreshToken == refresh {
		t.Fatal("rotation must issue a new refresh token")
	}

	// Replaying the revoked token finds no active session.
	sessionRepo.EXPECT().FindActiveByTokenHash(firstHash, gomock.Any()).Return(nil, errors.New("session not found"))
	if _, err := svc.Refresh(refresh, "ua", "ip"); err == nil {
		t.Fatal("expected replayed refresh token to fail")
	}
}

func TestChangePasswordRevokesSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repogomock.NewMockUserRepository(ctrl)
	sessionRepo := repogomock.NewMockSessionRepository(ctrl)
	svc := newAuthServiceForTest(t, userRepo, sessionRepo)

	hash, err := security.HashPassword("Curr3nt!Password#")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	userRepo.EXPECT().FindByID(uint(7)).Return(&domain.User{ID: 7, PasswordHash: hash}, nil)
	userRepo.EXPECT().Update(uint(7), gomock.Any()).DoAndReturn(func(id uint, updates map[string]any) error {
		if _, ok := updates["password_hash"]; !ok {
			t.Error("expected password_hash update")
		}
		return nil
	})
	sessionRepo.EXPECT().RevokeAllForUser(uint(7), gomock.Any()).Return(int64(2), nil)

	if err := svc.ChangePassword(7, "Curr3nt!Password#", "N3w!Password#Here"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
}
