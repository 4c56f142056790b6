package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/security"
)

type TokenService struct {
	jwtMgr      *security.JWTManager
	sessionRepo repository.SessionRepository
	pepper      string
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewTokenService(jwtMgr *security.JWTManager, sessionRepo repository.SessionRepository, pepper string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{jwtMgr: jwtMgr, sessionRepo: sessionRepo, pepper: pepper, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (s *TokenService) Issue(user *domain.User, ua, ip string) (access string, refresh string, csrf string, err error) {
	access, err = s.jwtMgr.SignAccessToken(user.ID, user.Role, s.accessTTL)
	if err != nil {
		return "", "", "", err
	}
	refresh, err = s.jwtMgr.SignRefreshToken(user.ID, s.refreshTTL)
	if err != nil {
		return "", "", "", err
	}
	hash := security.HashRefreshToken(refresh, s.pepper)
	if err := s.sessionRepo.Create(&domain.Session{UserID: user.ID, RefreshTokenHash: hash, UserAgent: ua, IP: ip, ExpiresAt: time.Now().Add(s.refreshTTL)}); err != nil {
		return "", "", "", err
	}
	csrf, err = security.NewCSRFToken()
	if err != nil {
		return "", "", "", err
	}
	return access, refresh, csrf, nil
}

// Rotate validates and revokes the presented refresh token, then issues a
// fresh token pair. Single use: a replayed token hits the revoked session and
// fails.
func (s *TokenService) Rotate(refreshToken string, userFetcher func(id uint) (*domain.User, error), ua, ip string) (access string, newRefresh string, csrf string, userID uint, err error) {
	claims, err := s.jwtMgr.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", "", 0, err
	}
	now := time.Now()
	hash := security.HashRefreshToken(refreshToken, s.pepper)
	session, err := s.sessionRepo.FindActiveByTokenHash(hash, now)
	if err != nil {
		return "", "", "", 0, err
	}
	if err := s.sessionRepo.Revoke(session.ID, now); err != nil {
		return "", "", "", 0, err
	}
	id64, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return "", "", "", 0, fmt.Errorf("invalid subject")
	}
	userID = uint(id64)
	if session.UserID != userID {
		return "", "", "", 0, fmt.Errorf("session mismatch")
	}
	user, err := userFetcher(userID)
	if err != nil {
		return "", "", "", 0, err
	}
	access, newRefresh, csrf, err = s.Issue(user, ua, ip)
	if err != nil {
		return "", "", "", 0, err
	}
	return access, newRefresh, csrf, userID, nil
}

func (s *TokenService) RevokeAll(userID uint, reason string) error {
	if _, err := s.sessionRepo.RevokeAllForUser(userID, time.Now()); err != nil {
		observability.RecordSessionManagementEvent(context.Background(), reason, "error")
		return err
	}
	observability.RecordSessionManagementEvent(context.Background(), reason, "success")
	return nil
}
