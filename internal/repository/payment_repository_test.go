package repository

import (
	"testing"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"gorm.io/gorm"
)

func seedPaymentsForTrend(t *testing.T, db *gorm.DB, ownerID, tenantID uint) {
	t.Helper()
	contract := domain.Contract{PropertyID: 1, OwnerID: ownerID, TenantID: tenantID, Status: domain.ContractStatusActive, RentAmount: 500000, StartDate: time.Now().AddDate(-1, 0, 0), EndDate: time.Now().AddDate(1, 0, 0)}
	if err := db.Create(&contract).Error; err != nil {
		t.Fatalf("seed contract: %v", err)
	}
	paid := func(offsetMonths int, amount int64) domain.Payment {
		at := time.Now().AddDate(0, offsetMonths, 0)
		return domain.Payment{ContractID: contract.ID, OwnerID: ownerID, TenantID: tenantID, Amount: amount, Status: domain.PaymentStatusPaid, DueDate: at, PaidAt: &at}
	}
	rows := []domain.Payment{
		paid(0, 500000),
		paid(-1, 500000),
		paid(-1, 20000),
		paid(-4, 480000),
		// Pending payment in range must not show up in the paid trend.
		{ContractID: contract.ID, OwnerID: ownerID, TenantID: tenantID, Amount: 500000, Status: domain.PaymentStatusPending, DueDate: time.Now()},
		// Paid but outside the window.
		paid(-8, 450000),
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed payment %d: %v", i, err)
		}
	}
}

func TestListPaidBetweenIsOneRangedQuery(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	payments := NewPaymentRepository(db)

	seedPaymentsForTrend(t, db, 1, 2)
	// Same shape for another owner to prove the scope holds on aggregates.
	seedPaymentsForTrend(t, db, 3, 4)

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	rows, err := payments.ListPaidBetween(Caller{ID: 1, Role: domain.RoleOwner}, from, to)
	if err != nil {
		t.Fatalf("list paid between: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 paid rows in window, got %d", len(rows))
	}
	for _, row := range rows {
		if row.OwnerID != 1 {
			t.Fatalf("scope leak: got payment of owner %d", row.OwnerID)
		}
		if row.Status != domain.PaymentStatusPaid {
			t.Fatalf("non-paid row in paid trend: %s", row.Status)
		}
		if row.PaidAt == nil || row.PaidAt.Before(from) || !row.PaidAt.Before(to) {
			t.Fatalf("row outside window: %v", row.PaidAt)
		}
	}
}

func TestTotalsForPeriod(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	payments := NewPaymentRepository(db)
	seedPaymentsForTrend(t, db, 1, 2)

	now := time.Now()
	from := now.AddDate(0, -2, 0)
	to := now.AddDate(0, 1, 0)

	totals, err := payments.TotalsForPeriod(Caller{ID: 1, Role: domain.RoleOwner}, from, to)
	if err != nil {
		t.Fatalf("totals for period: %v", err)
	}
	// In window: this month's paid 500000, last month's 500000 + 20000, and
	// one pending 500000.
	if totals.DueAmount != 1520000 {
		t.Fatalf("due amount: got %d", totals.DueAmount)
	}
	if totals.PaidAmount != 1020000 {
		t.Fatalf("paid amount: got %d", totals.PaidAmount)
	}
	if totals.DueCount != 4 || totals.PaidCount != 3 {
		t.Fatalf("counts: got due=%d paid=%d", totals.DueCount, totals.PaidCount)
	}

	// The tenant on the contract sees the same rows through the tenant column.
	tenantTotals, err := payments.TotalsForPeriod(Caller{ID: 2, Role: domain.RoleTenant}, from, to)
	if err != nil {
		t.Fatalf("tenant totals: %v", err)
	}
	if tenantTotals != totals {
		t.Fatalf("tenant totals mismatch: %+v vs %+v", tenantTotals, totals)
	}

	// A broker has no payment scope rule at all.
	brokerTotals, err := payments.TotalsForPeriod(Caller{ID: 1, Role: domain.RoleBroker}, from, to)
	if err != nil {
		t.Fatalf("broker totals: %v", err)
	}
	if brokerTotals.DueCount != 0 || brokerTotals.DueAmount != 0 {
		t.Fatalf("broker should aggregate nothing, got %+v", brokerTotals)
	}
}
