package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
)

var ErrPropertyNotFound = errors.New("property not found")

type PropertyFilter struct {
	Status  string
	Commune string
}

// PropertyRepository reads are scoped: a row outside the caller's scope is
// indistinguishable from a missing row.
type PropertyRepository interface {
	Create(property *domain.Property) error
	FindByID(caller Caller, id uint) (*domain.Property, error)
	ListPaged(caller Caller, filter PropertyFilter, req PageRequest) (PageResult[domain.Property], error)
	Update(caller Caller, id uint, updates map[string]any) error
	DeleteByID(caller Caller, id uint) error
	CountByStatus(caller Caller) (map[string]int64, error)
}

type GormPropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &GormPropertyRepository{db: db}
}

func (r *GormPropertyRepository) Create(property *domain.Property) error {
	if err := r.db.Create(property).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "property", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "property", "create", "success")
	return nil
}

func (r *GormPropertyRepository) FindByID(caller Caller, id uint) (*domain.Property, error) {
	var property domain.Property
	err := r.db.Scopes(PropertyScope(caller)).
		Preload("Owner").
		Preload("Broker").
		First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "property", "find_by_id", "not_found")
			return nil, ErrPropertyNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "property", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "property", "find_by_id", "success")
	return &property, nil
}

func (r *GormPropertyRepository) ListPaged(caller Caller, filter PropertyFilter, req PageRequest) (PageResult[domain.Property], error) {
	normalized := normalizePageRequest(req)
	result := PageResult[domain.Property]{Page: normalized.Page, Limit: normalized.Limit}

	base := r.db.Model(&domain.Property{}).Scopes(PropertyScope(caller))
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.Commune != "" {
		base = base.Where("commune = ?", filter.Commune)
	}
	if err := base.Count(&result.Total).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "property", "list_paged", "error")
		return PageResult[domain.Property]{}, err
	}
	offset := (normalized.Page - 1) * normalized.Limit
	if err := base.Order("id desc").Offset(offset).Limit(normalized.Limit).Find(&result.Items).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "property", "list_paged", "error")
		return PageResult[domain.Property]{}, err
	}
	result.Pages = calcPages(result.Total, normalized.Limit)
	observability.RecordRepositoryOperation(context.Background(), "property", "list_paged", "success")
	return result, nil
}

func (r *GormPropertyRepository) Update(caller Caller, id uint, updates map[string]any) error {
	res := r.db.Model(&domain.Property{}).Scopes(PropertyScope(caller)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "property", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "property", "update", "not_found")
		return ErrPropertyNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "property", "update", "success")
	return nil
}

func (r *GormPropertyRepository) DeleteByID(caller Caller, id uint) error {
	res := r.db.Scopes(PropertyScope(caller)).Delete(&domain.Property{}, id)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "property", "delete_by_id", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "property", "delete_by_id", "not_found")
		return ErrPropertyNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "property", "delete_by_id", "success")
	return nil
}

func (r *GormPropertyRepository) CountByStatus(caller Caller) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := r.db.Model(&domain.Property{}).Scopes(PropertyScope(caller)).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "property", "count_by_status", "error")
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	observability.RecordRepositoryOperation(context.Background(), "property", "count_by_status", "success")
	return out, nil
}
