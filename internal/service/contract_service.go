package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
)

var (
	ErrContractInvalidDates  = errors.New("end date must be after start date")
	ErrContractInvalidRent   = errors.New("rent amount must be greater than 0")
	ErrContractNotActive     = errors.New("contract is not active")
	ErrContractInvalidStatus = errors.New("unknown contract status")
)

// Display fallbacks for export and detail views when a relation row is
// missing or was deleted.
const (
	fallbackOwnerName    = "Propietario no identificado"
	fallbackUnassigned   = "Sin asignar"
	fallbackPropertyName = "No disponible"
)

type CreateContractInput struct {
	PropertyID uint
	TenantID   uint
	RentAmount int64
	StartDate  time.Time
	EndDate    time.Time
}

type ContractService struct {
	repo         repository.ContractRepository
	propertyRepo repository.PropertyRepository
}

func NewContractService(repo repository.ContractRepository, propertyRepo repository.PropertyRepository) *ContractService {
	return &ContractService{repo: repo, propertyRepo: propertyRepo}
}

// Create opens a contract on a property inside the caller's scope. Owner,
// tenant and broker ids are denormalized onto the row at write time.
func (s *ContractService) Create(ctx context.Context, caller repository.Caller, input CreateContractInput) (*domain.Contract, error) {
	if input.RentAmount <= 0 {
		return nil, ErrContractInvalidRent
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrContractInvalidDates
	}
	property, err := s.propertyRepo.FindByID(caller, input.PropertyID)
	if err != nil {
		return nil, err
	}

	contract := &domain.Contract{
		PropertyID: property.ID,
		OwnerID:    property.OwnerID,
		TenantID:   input.TenantID,
		BrokerID:   property.BrokerID,
		Status:     domain.ContractStatusActive,
		RentAmount: input.RentAmount,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	if err := s.repo.Create(contract); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Update(caller, property.ID, map[string]any{"status": domain.PropertyStatusOccupied}); err != nil {
		return nil, fmt.Errorf("contract %d created but property %d status update failed: %w", contract.ID, property.ID, err)
	}
	return contract, nil
}

func (s *ContractService) GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.Contract, error) {
	return s.repo.FindByID(caller, id)
}

func (s *ContractService) ListPaged(ctx context.Context, caller repository.Caller, filter repository.ContractFilter, req repository.PageRequest) (repository.PageResult[domain.Contract], error) {
	if filter.Status != "" && !containsString(domain.ContractStatuses, filter.Status) {
		return repository.PageResult[domain.Contract]{}, ErrContractInvalidStatus
	}
	return s.repo.ListPaged(caller, filter, req)
}

func (s *ContractService) Terminate(ctx context.Context, caller repository.Caller, id uint) (*domain.Contract, error) {
	contract, err := s.repo.FindByID(caller, id)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractStatusActive {
		return nil, ErrContractNotActive
	}
	now := time.Now()
	updates := map[string]any{"status": domain.ContractStatusTerminated, "ended_at": now}
	if err := s.repo.Update(caller, id, updates); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Update(caller, contract.PropertyID, map[string]any{"status": domain.PropertyStatusAvailable}); err != nil {
		return nil, fmt.Errorf("contract %d terminated but property %d status update failed: %w", id, contract.PropertyID, err)
	}
	return s.repo.FindByID(caller, id)
}

// ExportHeader is the column order of contract export rows.
func (s *ContractService) ExportHeader() []string {
	return []string{"id", "propiedad", "direccion", "propietario", "arrendatario", "estado", "monto_arriendo", "fecha_inicio", "fecha_termino"}
}

// ExportRows flattens the caller's contracts for download. Missing relations
// degrade to display fallbacks instead of failing the export.
func (s *ContractService) ExportRows(ctx context.Context, caller repository.Caller, filter repository.ContractFilter) ([][]string, error) {
	if filter.Status != "" && !containsString(domain.ContractStatuses, filter.Status) {
		return nil, ErrContractInvalidStatus
	}
	contracts, err := s.repo.ListScoped(caller, filter)
	if err != nil {
		observability.RecordExportRequest(ctx, "contract", "rows", "error")
		return nil, err
	}

	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		propertyName := fallbackPropertyName
		address := fallbackPropertyName
		if c.Property != nil {
			propertyName = c.Property.Title
			address = c.Property.Address
		}
		ownerName := fallbackOwnerName
		if c.Owner != nil && c.Owner.Name != "" {
			ownerName = c.Owner.Name
		}
		tenantName := fallbackUnassigned
		if c.Tenant != nil && c.Tenant.Name != "" {
			tenantName = c.Tenant.Name
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(c.ID), 10),
			propertyName,
			address,
			ownerName,
			tenantName,
			c.Status,
			strconv.FormatInt(c.RentAmount, 10),
			c.StartDate.Format("2006-01-02"),
			c.EndDate.Format("2006-01-02"),
		})
	}
	observability.RecordExportRequest(ctx, "contract", "rows", "success")
	observability.RecordExportRowCount(ctx, "contract", len(rows))
	return rows, nil
}
