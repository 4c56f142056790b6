package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
)

var ErrLegalCaseNotFound = errors.New("legal case not found")

type LegalCaseFilter struct {
	Status string
	Kind   string
}

type LegalCaseRepository interface {
	Create(legalCase *domain.LegalCase) error
	FindByID(caller Caller, id uint) (*domain.LegalCase, error)
	ListPaged(caller Caller, filter LegalCaseFilter, req PageRequest) (PageResult[domain.LegalCase], error)
	Update(caller Caller, id uint, updates map[string]any) error
	OpenCount(caller Caller) (int64, error)
}

type GormLegalCaseRepository struct{ db *gorm.DB }

func NewLegalCaseRepository(db *gorm.DB) LegalCaseRepository {
	return &GormLegalCaseRepository{db: db}
}

func (r *GormLegalCaseRepository) Create(legalCase *domain.LegalCase) error {
	if err := r.db.Create(legalCase).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "legal_case", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "legal_case", "create", "success")
	return nil
}

func (r *GormLegalCaseRepository) FindByID(caller Caller, id uint) (*domain.LegalCase, error) {
	var legalCase domain.LegalCase
	err := r.db.Scopes(LegalCaseScope(caller)).
		Preload("Contract").
		Preload("Contract.Property").
		First(&legalCase, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "legal_case", "find_by_id", "not_found")
			return nil, ErrLegalCaseNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "legal_case", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "legal_case", "find_by_id", "success")
	return &legalCase, nil
}

func (r *GormLegalCaseRepository) ListPaged(caller Caller, filter LegalCaseFilter, req PageRequest) (PageResult[domain.LegalCase], error) {
	normalized := normalizePageRequest(req)
	result := PageResult[domain.LegalCase]{Page: normalized.Page, Limit: normalized.Limit}

	base := r.db.Model(&domain.LegalCase{}).Scopes(LegalCaseScope(caller))
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.Kind != "" {
		base = base.Where("kind = ?", filter.Kind)
	}
	if err := base.Count(&result.Total).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "legal_case", "list_paged", "error")
		return PageResult[domain.LegalCase]{}, err
	}
	offset := (normalized.Page - 1) * normalized.Limit
	if err := base.Order("id desc").Offset(offset).Limit(normalized.Limit).Find(&result.Items).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "legal_case", "list_paged", "error")
		return PageResult[domain.LegalCase]{}, err
	}
	result.Pages = calcPages(result.Total, normalized.Limit)
	observability.RecordRepositoryOperation(context.Background(), "legal_case", "list_paged", "success")
	return result, nil
}

func (r *GormLegalCaseRepository) Update(caller Caller, id uint, updates map[string]any) error {
	res := r.db.Model(&domain.LegalCase{}).Scopes(LegalCaseScope(caller)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "legal_case", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "legal_case", "update", "not_found")
		return ErrLegalCaseNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "legal_case", "update", "success")
	return nil
}

func (r *GormLegalCaseRepository) OpenCount(caller Caller) (int64, error) {
	var count int64
	err := r.db.Model(&domain.LegalCase{}).Scopes(LegalCaseScope(caller)).
		Where("status IN ?", []string{domain.LegalCaseStatusOpen, domain.LegalCaseStatusInReview}).
		Count(&count).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "legal_case", "open_count", "error")
		return 0, err
	}
	observability.RecordRepositoryOperation(context.Background(), "legal_case", "open_count", "success")
	return count, nil
}
