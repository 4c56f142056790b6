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

func TestContractExportRowsWithFallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockContractRepository(ctrl)
	svc := NewContractService(repo, repogomock.NewMockPropertyRepository(ctrl))

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, time.February, 28, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ListScoped(caller, repository.ContractFilter{}).Return([]domain.Contract{
		{
			ID:         10,
			Status:     domain.ContractStatusActive,
			RentAmount: 650000,
			StartDate:  start,
			EndDate:    end,
			Property:   &domain.Property{Title: "Casa Nunoa", Address: "Av. Irarrazaval 4210"},
			Owner:      &domain.User{Name: "Carla Rojas"},
			Tenant:     &domain.User{Name: "Diego Fuentes"},
		},
		{
			// Relations missing: every display column degrades to a fallback.
			ID:         11,
			Status:     domain.ContractStatusTerminated,
			RentAmount: 480000,
			StartDate:  start,
			EndDate:    end,
		},
	}, nil)

	rows, err := svc.ExportRows(context.Background(), caller, repository.ContractFilter{})
	if err != nil {
		t.Fatalf("ExportRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	want := []string{"10", "Casa Nunoa", "Av. Irarrazaval 4210", "Carla Rojas", "Diego Fuentes", "active", "650000", "2026-03-01", "2027-02-28"}
	for i, col := range want {
		if rows[0][i] != col {
			t.Errorf("row 0 col %d: got %q, want %q", i, rows[0][i], col)
		}
	}

	fallback := []string{"11", "No disponible", "No disponible", "Propietario no identificado", "Sin asignar", "terminated", "480000", "2026-03-01", "2027-02-28"}
	for i, col := range fallback {
		if rows[1][i] != col {
			t.Errorf("row 1 col %d: got %q, want %q", i, rows[1][i], col)
		}
	}

	if len(svc.ExportHeader()) != len(want) {
		t.Fatalf("header has %d columns, rows have %d", len(svc.ExportHeader()), len(want))
	}
}

func TestContractExportRowsRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockContractRepository(ctrl)
	svc := NewContractService(repo, repogomock.NewMockPropertyRepository(ctrl))
	repo.EXPECT().ListScoped(gomock.Any(), gomock.Any()).Times(0)

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	rows, err := svc.ExportRows(context.Background(), caller, repository.ContractFilter{Status: "vigente"})
	if !errors.Is(err, ErrContractInvalidStatus) {
		t.Fatalf("expected ErrContractInvalidStatus, got %v", err)
	}
	if rows != nil {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestContractCreateDenormalizesFromProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockContractRepository(ctrl)
	propertyRepo := repogomock.NewMockPropertyRepository(ctrl)
	svc := NewContractService(repo, propertyRepo)

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	brokerID := uint(6)
	propertyRepo.EXPECT().FindByID(caller, uint(5)).Return(&domain.Property{
		ID: 5, OwnerID: 1, BrokerID: &brokerID, Status: domain.PropertyStatusAvailable,
	}, nil)
	repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Contract) error {
		if c.OwnerID != 1 || c.BrokerID == nil || *c.BrokerID != brokerID || c.TenantID != 3 {
			t.Errorf("denormalized ids wrong: %+v", c)
		}
		c.ID = 77
		return nil
	})
	propertyRepo.EXPECT().Update(caller, uint(5), map[string]any{"status": domain.PropertyStatusOccupied}).Return(nil)

	start := time.Now()
	contract, err := svc.Create(context.Background(), caller, CreateContractInput{
		PropertyID: 5, TenantID: 3, RentAmount: 650000, StartDate: start, EndDate: start.AddDate(1, 0, 0),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if contract.ID != 77 || contract.Status != domain.ContractStatusActive {
		t.Fatalf("unexpected contract: %+v", contract)
	}
}

func TestContractCreateFailsWhenPropertyStatusUpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockContractRepository(ctrl)
	propertyRepo := repogomock.NewMockPropertyRepository(ctrl)
	svc := NewContractService(repo, propertyRepo)

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	propertyRepo.EXPECT().FindByID(caller, uint(5)).Return(&domain.Property{
		ID: 5, OwnerID: 1, Status: domain.PropertyStatusAvailable,
	}, nil)
	repo.EXPECT().Create(gomock.Any()).Return(nil)
	updateErr := errors.New("connection reset")
	propertyRepo.EXPECT().Update(caller, uint(5), map[string]any{"status": domain.PropertyStatusOccupied}).Return(updateErr)

	start := time.Now()
	contract, err := svc.Create(context.Background(), caller, CreateContractInput{
		PropertyID: 5, TenantID: 3, RentAmount: 650000, StartDate: start, EndDate: start.AddDate(1, 0, 0),
	})
	if !errors.Is(err, updateErr) {
		t.Fatalf("expected the property update error, got %v", err)
	}
	if contract != nil {
		t.Fatalf("expected no contract on failure, got %+v", contract)
	}
}

func TestContractTerminateFailsWhenPropertyStatusUpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockContractRepository(ctrl)
	propertyRepo := repogomock.NewMockPropertyRepository(ctrl)
	svc := NewContractService(repo, propertyRepo)

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	repo.EXPECT().FindByID(caller, uint(10)).Return(&domain.Contract{
		ID: 10, PropertyID: 5, Status: domain.ContractStatusActive,
	}, nil)
	repo.EXPECT().Update(caller, uint(10), gomock.Any()).Return(nil)
	updateErr := errors.New("connection reset")
	propertyRepo.EXPECT().Update(caller, uint(5), map[string]any{"status": domain.PropertyStatusAvailable}).Return(updateErr)

	if _, err := svc.Terminate(context.Background(), caller, 10); !errors.Is(err, updateErr) {
		t.Fatalf("expected the property update error, got %v", err)
	}
}

func TestContractTerminateRequiresActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockContractRepository(ctrl)
	svc := NewContractService(repo, repogomock.NewMockPropertyRepository(ctrl))

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	repo.EXPECT().FindByID(caller, uint(10)).Return(&domain.Contract{ID: 10, Status: domain.ContractStatusTerminated}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if _, err := svc.Terminate(context.Background(), caller, 10); !errors.Is(err, ErrContractNotActive) {
		t.Fatalf("expected ErrContractNotActive, got %v", err)
	}
}
