package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
)

var ErrContractNotFound = errors.New("contract not found")

type ContractFilter struct {
	Status     string
	PropertyID uint
}

type ContractRepository interface {
	Create(contract *domain.Contract) error
	FindByID(caller Caller, id uint) (*domain.Contract, error)
	ListPaged(caller Caller, filter ContractFilter, req PageRequest) (PageResult[domain.Contract], error)
	// ListScoped returns every contract visible to the caller, relations
	// preloaded, for export downloads. Bounded by the caller's scope, not
	// paginated.
	ListScoped(caller Caller, filter ContractFilter) ([]domain.Contract, error)
	Update(caller Caller, id uint, updates map[string]any) error
	ActiveCount(caller Caller) (int64, error)
}

type GormContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &GormContractRepository{db: db}
}

func (r *GormContractRepository) Create(contract *domain.Contract) error {
	if err := r.db.Create(contract).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "contract", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "contract", "create", "success")
	return nil
}

func (r *GormContractRepository) FindByID(caller Caller, id uint) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.db.Scopes(ContractScope(caller)).
		Preload("Property").
		Preload("Owner").
		Preload("Tenant").
		First(&contract, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "contract", "find_by_id", "not_found")
			return nil, ErrContractNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "contract", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "contract", "find_by_id", "success")
	return &contract, nil
}

func (r *GormContractRepository) ListPaged(caller Caller, filter ContractFilter, req PageRequest) (PageResult[domain.Contract], error) {
	normalized := normalizePageRequest(req)
	result := PageResult[domain.Contract]{Page: normalized.Page, Limit: normalized.Limit}

	base := r.db.Model(&domain.Contract{}).Scopes(ContractScope(caller))
	base = applyContractFilter(base, filter)
	if err := base.Count(&result.Total).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "contract", "list_paged", "error")
		return PageResult[domain.Contract]{}, err
	}
	offset := (normalized.Page - 1) * normalized.Limit
	err := base.Preload("Property").
		Order("id desc").Offset(offset).Limit(normalized.Limit).
		Find(&result.Items).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "contract", "list_paged", "error")
		return PageResult[domain.Contract]{}, err
	}
	result.Pages = calcPages(result.Total, normalized.Limit)
	observability.RecordRepositoryOperation(context.Background(), "contract", "list_paged", "success")
	return result, nil
}

func (r *GormContractRepository) ListScoped(caller Caller, filter ContractFilter) ([]domain.Contract, error) {
	var contracts []domain.Contract
	base := r.db.Scopes(ContractScope(caller))
	base = applyContractFilter(base, filter)
	err := base.Preload("Property").
		Preload("Owner").
		Preload("Tenant").
		Order("id asc").
		Find(&contracts).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "contract", "list_scoped", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "contract", "list_scoped", "success")
	return contracts, nil
}

func (r *GormContractRepository) Update(caller Caller, id uint, updates map[string]any) error {
	res := r.db.Model(&domain.Contract{}).Scopes(ContractScope(caller)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "contract", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "contract", "update", "not_found")
		return ErrContractNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "contract", "update", "success")
	return nil
}

func (r *GormContractRepository) ActiveCount(caller Caller) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Contract{}).Scopes(ContractScope(caller)).
		Where("status = ?", domain.ContractStatusActive).
		Count(&count).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "contract", "active_count", "error")
		return 0, err
	}
	observability.RecordRepositoryOperation(context.Background(), "contract", "active_count", "success")
	return count, nil
}

func applyContractFilter(base *gorm.DB, filter ContractFilter) *gorm.DB {
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.PropertyID != 0 {
		base = base.Where("property_id = ?", filter.PropertyID)
	}
	return base
}
