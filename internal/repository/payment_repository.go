package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentFilter struct {
	Status     string
	ContractID uint
	DueFrom    *time.Time
	DueTo      *time.Time
}

// PeriodTotals aggregates the caller's payments over a date window for
// collection-rate reporting. Amounts are in the contract currency's minor
// unit.
type PeriodTotals struct {
	DueAmount  int64
	PaidAmount int64
	DueCount   int64
	PaidCount  int64
}

type PaymentRepository interface {
	Create(payment *domain.Payment) error
	FindByID(caller Caller, id uint) (*domain.Payment, error)
	ListPaged(caller Caller, filter PaymentFilter, req PageRequest) (PageResult[domain.Payment], error)
	Update(caller Caller, id uint, updates map[string]any) error
	// ListPaidBetween returns paid payments with paid_at inside [from, to) in
	// one ranged query; bucketing into months happens in the service layer.
	ListPaidBetween(caller Caller, from, to time.Time) ([]domain.Payment, error)
	TotalsForPeriod(caller Caller, from, to time.Time) (PeriodTotals, error)
}

type GormPaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Create(payment *domain.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "payment", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "payment", "create", "success")
	return nil
}

func (r *GormPaymentRepository) FindByID(caller Caller, id uint) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.Scopes(PaymentScope(caller)).
		Preload("Contract").
		First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "payment", "find_by_id", "not_found")
			return nil, ErrPaymentNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "payment", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "payment", "find_by_id", "success")
	return &payment, nil
}

func (r *GormPaymentRepository) ListPaged(caller Caller, filter PaymentFilter, req PageRequest) (PageResult[domain.Payment], error) {
	normalized := normalizePageRequest(req)
	result := PageResult[domain.Payment]{Page: normalized.Page, Limit: normalized.Limit}

	base := r.db.Model(&domain.Payment{}).Scopes(PaymentScope(caller))
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.ContractID != 0 {
		base = base.Where("contract_id = ?", filter.ContractID)
	}
	if filter.DueFrom != nil {
		base = base.Where("due_date >= ?", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		base = base.Where("due_date < ?", *filter.DueTo)
	}
	if err := base.Count(&result.Total).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "payment", "list_paged", "error")
		return PageResult[domain.Payment]{}, err
	}
	offset := (normalized.Page - 1) * normalized.Limit
	if err := base.Order("due_date desc, id desc").Offset(offset).Limit(normalized.Limit).Find(&result.Items).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "payment", "list_paged", "error")
		return PageResult[domain.Payment]{}, err
	}
	result.Pages = calcPages(result.Total, normalized.Limit)
	observability.RecordRepositoryOperation(context.Background(), "payment", "list_paged", "success")
	return result, nil
}

func (r *GormPaymentRepository) Update(caller Caller, id uint, updates map[string]any) error {
	res := r.db.Model(&domain.Payment{}).Scopes(PaymentScope(caller)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "payment", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "payment", "update", "not_found")
		return ErrPaymentNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "payment", "update", "success")
	return nil
}

func (r *GormPaymentRepository) ListPaidBetween(caller Caller, from, to time.Time) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.Scopes(PaymentScope(caller)).
		Where("status = ? AND paid_at >= ? AND paid_at < ?", domain.PaymentStatusPaid, from, to).
		Order("paid_at asc").
		Find(&payments).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "payment", "list_paid_between", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "payment", "list_paid_between", "success")
	return payments, nil
}

func (r *GormPaymentRepository) TotalsForPeriod(caller Caller, from, to time.Time) (PeriodTotals, error) {
	var totals PeriodTotals
	err := r.db.Model(&domain.Payment{}).Scopes(PaymentScope(caller)).
		Where("due_date >= ? AND due_date < ?", from, to).
		Select(
			"coalesce(sum(amount), 0) as due_amount, "+
				"coalesce(sum(case when status = ? then amount else 0 end), 0) as paid_amount, "+
				"count(*) as due_count, "+
				"coalesce(sum(case when status = ? then 1 else 0 end), 0) as paid_count",
			domain.PaymentStatusPaid, domain.PaymentStatusPaid,
		).
		Scan(&totals).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "payment", "totals_for_period", "error")
		return PeriodTotals{}, err
	}
	observability.RecordRepositoryOperation(context.Background(), "payment", "totals_for_period", "success")
	return totals, nil
}
