package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
)

func TestSessionRepositoryLifecycle(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	repo := NewSessionRepository(db)

	now := time.Now()
	session := &domain.Session{UserID: 7, RefreshTokenHash: "hash-a", ExpiresAt: now.Add(time.Hour)}
	if err := repo.Create(session); err != nil {
		t.Fatalf("create session: %v", err)
	}
	other := &domain.Session{UserID: 7, RefreshTokenHash: "hash-b", ExpiresAt: now.Add(time.Hour)}
	if err := repo.Create(other); err != nil {
		t.Fatalf("create second session: %v", err)
	}

	found, err := repo.FindActiveByTokenHash("hash-a", now)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if found.ID != session.ID {
		t.Fatalf("wrong session: got %d want %d", found.ID, session.ID)
	}

	if err := repo.Revoke(session.ID, now); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := repo.FindActiveByTokenHash("hash-a", now); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("revoked session still active: %v", err)
	}
	if err := repo.Revoke(session.ID, now); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("double revoke should be not found, got %v", err)
	}

	revoked, err := repo.RevokeAllForUser(7, now)
	if err != nil {
		t.Fatalf("revoke all: %v", err)
	}
	if revoked != 1 {
		t.Fatalf("expected one remaining session revoked, got %d", revoked)
	}

	expired := &domain.Session{UserID: 8, RefreshTokenHash: "hash-c", ExpiresAt: now.Add(-time.Hour)}
	if err := repo.Create(expired); err != nil {
		t.Fatalf("create expired session: %v", err)
	}
	if _, err := repo.FindActiveByTokenHash("hash-c", now); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expired session should not resolve, got %v", err)
	}
	deleted, err := repo.DeleteExpired(now)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected one expired session deleted, got %d", deleted)
	}
}
