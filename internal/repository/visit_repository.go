package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
)

var ErrVisitNotFound = errors.New("visit not found")

type VisitFilter struct {
	Status     string
	PropertyID uint
	From       *time.Time
	To         *time.Time
}

type VisitRepository interface {
	Create(visit *domain.Visit) error
	FindByID(caller Caller, id uint) (*domain.Visit, error)
	ListPaged(caller Caller, filter VisitFilter, req PageRequest) (PageResult[domain.Visit], error)
	Update(caller Caller, id uint, updates map[string]any) error
	UpcomingCount(caller Caller, now time.Time) (int64, error)
}

type GormVisitRepository struct{ db *gorm.DB }

func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &GormVisitRepository{db: db}
}

func (r *GormVisitRepository) Create(visit *domain.Visit) error {
	if err := r.db.Create(visit).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "visit", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "visit", "create", "success")
	return nil
}

func (r *GormVisitRepository) FindByID(caller Caller, id uint) (*domain.Visit, error) {
	var visit domain.Visit
	err := r.db.Scopes(VisitScope(caller)).
		Preload("Property").
		First(&visit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "visit", "find_by_id", "not_found")
			return nil, ErrVisitNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "visit", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "visit", "find_by_id", "success")
	return &visit, nil
}

func (r *GormVisitRepository) ListPaged(caller Caller, filter VisitFilter, req PageRequest) (PageResult[domain.Visit], error) {
	normalized := normalizePageRequest(req)
	result := PageResult[domain.Visit]{Page: normalized.Page, Limit: normalized.Limit}

	base := r.db.Model(&domain.Visit{}).Scopes(VisitScope(caller))
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.PropertyID != 0 {
		base = base.Where("property_id = ?", filter.PropertyID)
	}
	if filter.From != nil {
		base = base.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		base = base.Where("scheduled_at < ?", *filter.To)
	}
	if err := base.Count(&result.Total).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "visit", "list_paged", "error")
		return PageResult[domain.Visit]{}, err
	}
	offset := (normalized.Page - 1) * normalized.Limit
	err := base.Preload("Property").
		Order("scheduled_at asc, id asc").Offset(offset).Limit(normalized.Limit).
		Find(&result.Items).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "visit", "list_paged", "error")
		return PageResult[domain.Visit]{}, err
	}
	result.Pages = calcPages(result.Total, normalized.Limit)
	observability.RecordRepositoryOperation(context.Background(), "visit", "list_paged", "success")
	return result, nil
}

func (r *GormVisitRepository) Update(caller Caller, id uint, updates map[string]any) error {
	res := r.db.Model(&domain.Visit{}).Scopes(VisitScope(caller)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "visit", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "visit", "update", "not_found")
		return ErrVisitNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "visit", "update", "success")
	return nil
}

func (r *GormVisitRepository) UpcomingCount(caller Caller, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Visit{}).Scopes(VisitScope(caller)).
		Where("status = ? AND scheduled_at >= ?", domain.VisitStatusScheduled, now).
		Count(&count).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "visit", "upcoming_count", "error")
		return 0, err
	}
	observability.RecordRepositoryOperation(context.Background(), "visit", "upcoming_count", "success")
	return count, nil
}
