package repository

import (
	"errors"
	"testing"

	"github.com/arriendohq/arriendo/internal/domain"
)

func TestTemplateRepositoryUpsertAndDelete(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	repo := NewTemplateRepository(db)

	tpl := &domain.NotificationTemplate{
		Key:     "payment_reminder",
		Name:    "Recordatorio de pago",
		Subject: "Tu arriendo vence pronto",
		Body:    "Hola {{nombre}}, tu pago vence el {{fecha}}.",
	}
	if err := repo.Upsert(tpl); err != nil {
		t.Fatalf("insert template: %v", err)
	}

	// Second upsert with the same key replaces, never duplicates.
	if err := repo.Upsert(&domain.NotificationTemplate{Key: "payment_reminder", Name: "Recordatorio", Subject: "Nuevo asunto", Body: "Nuevo cuerpo"}); err != nil {
		t.Fatalf("update template: %v", err)
	}
	all, err := repo.List()
	if err != nil {
		t.Fatalf("list templates: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one template after upsert, got %d", len(all))
	}

	loaded, err := repo.FindByKey("payment_reminder")
	if err != nil {
		t.Fatalf("find by key: %v", err)
	}
	if loaded.Subject != "Nuevo asunto" {
		t.Fatalf("subject not replaced: %q", loaded.Subject)
	}

	if err := repo.DeleteByKey("payment_reminder"); err != nil {
		t.Fatalf("delete template: %v", err)
	}
	if _, err := repo.FindByKey("payment_reminder"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if err := repo.DeleteByKey("payment_reminder"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound on second delete, got %v", err)
	}
}
