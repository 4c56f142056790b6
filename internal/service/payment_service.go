package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
)

var (
	ErrPaymentInvalidAmount = errors.New("amount must be greater than 0")
	ErrPaymentInvalidStatus = errors.New("unknown payment status")
	ErrPaymentAlreadyPaid   = errors.New("payment is already settled")
	ErrTrendInvalidMonths   = errors.New("months must be between 1 and 24")
)

const trendDefaultMonths = 6

// TrendPoint is one month of collected rent. Months without payments appear
// with a zero amount so the series always covers the full window.
type TrendPoint struct {
	Month  string `json:"month"` // YYYY-MM
	Amount int64  `json:"amount"`
	Count  int    `json:"count"`
}

type CreatePaymentInput struct {
	ContractID uint
	Amount     int64
	DueDate    time.Time
	Method     string
	Reference  string
}

type PaymentService struct {
	repo         repository.PaymentRepository
	contractRepo repository.ContractRepository
	now          func() time.Time
}

func NewPaymentService(repo repository.PaymentRepository, contractRepo repository.ContractRepository) *PaymentService {
	return &PaymentService{repo: repo, contractRepo: contractRepo, now: time.Now}
}

func (s *PaymentService) Create(ctx context.Context, caller repository.Caller, input CreatePaymentInput) (*domain.Payment, error) {
	if input.Amount <= 0 {
		return nil, ErrPaymentInvalidAmount
	}
	contract, err := s.contractRepo.FindByID(caller, input.ContractID)
	if err != nil {
		return nil, err
	}
	payment := &domain.Payment{
		ContractID: contract.ID,
		OwnerID:    contract.OwnerID,
		TenantID:   contract.TenantID,
		Amount:     input.Amount,
		Status:     domain.PaymentStatusPending,
		Method:     input.Method,
		Reference:  input.Reference,
		DueDate:    input.DueDate,
	}
	if err := s.repo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.Payment, error) {
	return s.repo.FindByID(caller, id)
}

func (s *PaymentService) ListPaged(ctx context.Context, caller repository.Caller, filter repository.PaymentFilter, req repository.PageRequest) (repository.PageResult[domain.Payment], error) {
	if filter.Status != "" && !containsString(domain.PaymentStatuses, filter.Status) {
		return repository.PageResult[domain.Payment]{}, ErrPaymentInvalidStatus
	}
	return s.repo.ListPaged(caller, filter, req)
}

func (s *PaymentService) MarkPaid(ctx context.Context, caller repository.Caller, id uint, method, reference string) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(caller, id)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentStatusPaid {
		return nil, ErrPaymentAlreadyPaid
	}
	now := s.now()
	updates := map[string]any{"status": domain.PaymentStatusPaid, "paid_at": now}
	if method != "" {
		updates["method"] = method
	}
	if reference != "" {
		updates["reference"] = reference
	}
	if err := s.repo.Update(caller, id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(caller, id)
}

// Trend returns the last `months` months of collected rent for the caller,
// oldest first, fetched with one ranged query and bucketed in memory. Months
// without a paid payment are zero-filled. Callers pick the default; months
// outside 1..24 are rejected, including an explicit 0.
func (s *PaymentService) Trend(ctx context.Context, caller repository.Caller, months int) ([]TrendPoint, error) {
	if months < 1 || months > 24 {
		return nil, ErrTrendInvalidMonths
	}

	now := s.now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := currentMonth.AddDate(0, -(months - 1), 0)
	to := currentMonth.AddDate(0, 1, 0)

	payments, err := s.repo.ListPaidBetween(caller, from, to)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := from.AddDate(0, i, 0).Format("2006-01")
		points[i] = TrendPoint{Month: month}
		index[month] = i
	}
	for _, p := range payments {
		if p.PaidAt == nil {
			continue
		}
		month := p.PaidAt.UTC().Format("2006-01")
		i, ok := index[month]
		if !ok {
			continue
		}
		points[i].Amount += p.Amount
		points[i].Count++
	}
	return points, nil
}

// CollectionRate is paid over due for the window, in percent with one
// decimal. A window without due payments reports 0.
func (s *PaymentService) CollectionRate(ctx context.Context, caller repository.Caller, from, to time.Time) (float64, error) {
	totals, err := s.repo.TotalsForPeriod(caller, from, to)
	if err != nil {
		return 0, err
	}
	if totals.DueAmount == 0 {
		return 0, nil
	}
	return roundOneDecimal(float64(totals.PaidAmount) / float64(totals.DueAmount) * 100), nil
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
