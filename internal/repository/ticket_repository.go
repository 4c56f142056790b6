package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
)

var ErrTicketNotFound = errors.New("maintenance ticket not found")

type TicketFilter struct {
	Status     string
	Priority   string
	PropertyID uint
}

type TicketRepository interface {
	Create(ticket *domain.MaintenanceTicket) error
	FindByID(caller Caller, id uint) (*domain.MaintenanceTicket, error)
	ListPaged(caller Caller, filter TicketFilter, req PageRequest) (PageResult[domain.MaintenanceTicket], error)
	Update(caller Caller, id uint, updates map[string]any) error
	OpenCount(caller Caller) (int64, error)
}

type GormTicketRepository struct{ db *gorm.DB }

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &GormTicketRepository{db: db}
}

func (r *GormTicketRepository) Create(ticket *domain.MaintenanceTicket) error {
	if err := r.db.Create(ticket).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "ticket", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "ticket", "create", "success")
	return nil
}

func (r *GormTicketRepository) FindByID(caller Caller, id uint) (*domain.MaintenanceTicket, error) {
	var ticket domain.MaintenanceTicket
	err := r.db.Scopes(TicketScope(caller)).
		Preload("Property").
		Preload("Owner").
		Preload("Provider").
		First(&ticket, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "ticket", "find_by_id", "not_found")
			return nil, ErrTicketNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "ticket", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "ticket", "find_by_id", "success")
	return &ticket, nil
}

func (r *GormTicketRepository) ListPaged(caller Caller, filter TicketFilter, req PageRequest) (PageResult[domain.MaintenanceTicket], error) {
	normalized := normalizePageRequest(req)
	result := PageResult[domain.MaintenanceTicket]{Page: normalized.Page, Limit: normalized.Limit}

	base := r.db.Model(&domain.MaintenanceTicket{}).Scopes(TicketScope(caller))
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		base = base.Where("priority = ?", filter.Priority)
	}
	if filter.PropertyID != 0 {
		base = base.Where("property_id = ?", filter.PropertyID)
	}
	if err := base.Count(&result.Total).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "ticket", "list_paged", "error")
		return PageResult[domain.MaintenanceTicket]{}, err
	}
	offset := (normalized.Page - 1) * normalized.Limit
	err := base.Preload("Property").
		Preload("Owner").
		Preload("Provider").
		Order("id desc").Offset(offset).Limit(normalized.Limit).
		Find(&result.Items).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "ticket", "list_paged", "error")
		return PageResult[domain.MaintenanceTicket]{}, err
	}
	result.Pages = calcPages(result.Total, normalized.Limit)
	observability.RecordRepositoryOperation(context.Background(), "ticket", "list_paged", "success")
	return result, nil
}

func (r *GormTicketRepository) Update(caller Caller, id uint, updates map[string]any) error {
	res := r.db.Model(&domain.MaintenanceTicket{}).Scopes(TicketScope(caller)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "ticket", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "ticket", "update", "not_found")
		return ErrTicketNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "ticket", "update", "success")
	return nil
}

func (r *GormTicketRepository) OpenCount(caller Caller) (int64, error) {
	var count int64
	err := r.db.Model(&domain.MaintenanceTicket{}).Scopes(TicketScope(caller)).
		Where("status IN ?", []string{domain.TicketStatusOpen, domain.TicketStatusAssigned, domain.TicketStatusInProgress}).
		Count(&count).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "ticket", "open_count", "error")
		return 0, err
	}
	observability.RecordRepositoryOperation(context.Background(), "ticket", "open_count", "success")
	return count, nil
}
