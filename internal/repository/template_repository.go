package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
)

var ErrTemplateNotFound = errors.New("notification template not found")

type TemplateRepository interface {
	FindByKey(key string) (*domain.NotificationTemplate, error)
	List() ([]domain.NotificationTemplate, error)
	Upsert(template *domain.NotificationTemplate) error
	DeleteByKey(key string) error
}

type GormTemplateRepository struct{ db *gorm.DB }

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &GormTemplateRepository{db: db}
}

func (r *GormTemplateRepository) FindByKey(key string) (*domain.NotificationTemplate, error) {
	var template domain.NotificationTemplate
	if err := r.db.Where("key = ?", key).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "template", "find_by_key", "not_found")
			return nil, ErrTemplateNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "template", "find_by_key", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "template", "find_by_key", "success")
	return &template, nil
}

func (r *GormTemplateRepository) List() ([]domain.NotificationTemplate, error) {
	var templates []domain.NotificationTemplate
	if err := r.db.Order("key asc").Find(&templates).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "template", "list", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "template", "list", "success")
	return templates, nil
}

func (r *GormTemplateRepository) Upsert(template *domain.NotificationTemplate) error {
	var existing domain.NotificationTemplate
	err := r.db.Where("key = ?", template.Key).First(&existing).Error
	switch {
	case err == nil:
		template.ID = existing.ID
		if err := r.db.Save(template).Error; err != nil {
			observability.RecordRepositoryOperation(context.Background(), "template", "upsert", "error")
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.Create(template).Error; err != nil {
			observability.RecordRepositoryOperation(context.Background(), "template", "upsert", "error")
			return err
		}
	default:
		observability.RecordRepositoryOperation(context.Background(), "template", "upsert", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "template", "upsert", "success")
	return nil
}

func (r *GormTemplateRepository) DeleteByKey(key string) error {
	res := r.db.Where("key = ?", key).Delete(&domain.NotificationTemplate{})
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "template", "delete_by_key", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "template", "delete_by_key", "not_found")
		return ErrTemplateNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "template", "delete_by_key", "success")
	return nil
}
