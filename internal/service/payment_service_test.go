package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
	repogomock "github.com/arriendohq/arriendo/internal/repository/gomock"
	"go.uber.org/mock/gomock"
)

func TestPaymentTrendZeroFillsEmptyMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockPaymentRepository(ctrl)
	svc := NewPaymentService(repo, repogomock.NewMockContractRepository(ctrl))
	svc.now = func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	wantFrom := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	feb1 := time.Date(2026, time.February, 3, 10, 0, 0, 0, time.UTC)
	feb2 := time.Date(2026, time.February, 27, 18, 0, 0, 0, time.UTC)
	may := time.Date(2026, time.May, 5, 9, 0, 0, 0, time.UTC)
	repo.EXPECT().ListPaidBetween(caller, wantFrom, wantTo).Return([]domain.Payment{
		{ID: 1, Amount: 500000, Status: domain.PaymentStatusPaid, PaidAt: &feb1},
		{ID: 2, Amount: 500000, Status: domain.PaymentStatusPaid, PaidAt: &feb2},
		{ID: 3, Amount: 520000, Status: domain.PaymentStatusPaid, PaidAt: &may},
	}, nil)

	points, err := svc.Trend(context.Background(), caller, trendDefaultMonths)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}

	want := []TrendPoint{
		{Month: "2026-01"},
		{Month: "2026-02", Amount: 1000000, Count: 2},
		{Month: "2026-03"},
		{Month: "2026-04"},
		{Month: "2026-05", Amount: 520000, Count: 1},
		{Month: "2026-06"},
	}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("point %d: got %+v, want %+v", i, p, want[i])
		}
	}
}

func TestPaymentTrendRejectsOutOfRangeMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockPaymentRepository(ctrl)
	svc := NewPaymentService(repo, repogomock.NewMockContractRepository(ctrl))

	for _, months := range []int{-1, 0, 25} {
		if _, err := svc.Trend(context.Background(), repository.Caller{ID: 1, Role: domain.RoleOwner}, months); !errors.Is(err, ErrTrendInvalidMonths) {
			t.Errorf("months=%d: expected ErrTrendInvalidMonths, got %v", months, err)
		}
	}
}

func TestCollectionRateRoundsToOneDecimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockPaymentRepository(ctrl)
	svc := NewPaymentService(repo, repogomock.NewMockContractRepository(ctrl))

	caller := repository.Caller{ID: 4, Role: domain.RoleTenant}
	from := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("two thirds collected", func(t *testing.T) {
		repo.EXPECT().TotalsForPeriod(caller, from, to).Return(repository.PeriodTotals{
			DueAmount: 1500000, PaidAmount: 1000000, DueCount: 3, PaidCount: 2,
		}, nil)
		rate, err := svc.CollectionRate(context.Background(), caller, from, to)
		if err != nil {
			t.Fatalf("CollectionRate: %v", err)
		}
		if rate != 66.7 {
			t.Fatalf("expected 66.7, got %v", rate)
		}
	})

	t.Run("nothing due reports zero", func(t *testing.T) {
		repo.EXPECT().TotalsForPeriod(caller, from, to).Return(repository.PeriodTotals{}, nil)
		rate, err := svc.CollectionRate(context.Background(), caller, from, to)
		if err != nil {
			t.Fatalf("CollectionRate: %v", err)
		}
		if rate != 0 {
			t.Fatalf("expected 0, got %v", rate)
		}
	})
}

func TestMarkPaidRejectsSettledPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockPaymentRepository(ctrl)
	svc := NewPaymentService(repo, repogomock.NewMockContractRepository(ctrl))

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	paidAt := time.Now()
	repo.EXPECT().FindByID(caller, uint(9)).Return(&domain.Payment{
		ID: 9, Status: domain.PaymentStatusPaid, PaidAt: &paidAt,
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if _, err := svc.MarkPaid(context.Background(), caller, 9, "transfer", ""); !errors.Is(err, ErrPaymentAlreadyPaid) {
		t.Fatalf("expected ErrPaymentAlreadyPaid, got %v", err)
	}
}
