package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
)

var (
	ErrLegalCaseInvalidKind    = errors.New("unknown legal case kind")
	ErrLegalCaseInvalidStatus  = errors.New("unknown legal case status")
	ErrLegalCaseEmptySummary   = errors.New("summary is required")
	ErrLegalCaseAlreadyClosed  = errors.New("legal case is already closed")
	ErrLegalCaseHandlerMissing = errors.New("handler must be a support or admin user")
)

type OpenLegalCaseInput struct {
	ContractID uint
	Kind       string
	Summary    string
}

type LegalService struct {
	repo         repository.LegalCaseRepository
	contractRepo repository.ContractRepository
	userRepo     repository.UserRepository
}

func NewLegalService(repo repository.LegalCaseRepository, contractRepo repository.ContractRepository, userRepo repository.UserRepository) *LegalService {
	return &LegalService{repo: repo, contractRepo: contractRepo, userRepo: userRepo}
}

// Open files a case against a contract the caller is a party to. Both party
// ids are denormalized from the contract.
func (s *LegalService) Open(ctx context.Context, caller repository.Caller, input OpenLegalCaseInput) (*domain.LegalCase, error) {
	if !containsString(domain.LegalCaseKinds, input.Kind) {
		return nil, ErrLegalCaseInvalidKind
	}
	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		return nil, ErrLegalCaseEmptySummary
	}
	contract, err := s.contractRepo.FindByID(caller, input.ContractID)
	if err != nil {
		return nil, err
	}

	legalCase := &domain.LegalCase{
		ContractID: contract.ID,
		OwnerID:    contract.OwnerID,
		TenantID:   contract.TenantID,
		Kind:       input.Kind,
		Summary:    summary,
		Status:     domain.LegalCaseStatusOpen,
	}
	if err := s.repo.Create(legalCase); err != nil {
		return nil, err
	}
	return legalCase, nil
}

func (s *LegalService) GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.LegalCase, error) {
	return s.repo.FindByID(caller, id)
}

func (s *LegalService) ListPaged(ctx context.Context, caller repository.Caller, filter repository.LegalCaseFilter, req repository.PageRequest) (repository.PageResult[domain.LegalCase], error) {
	if filter.Status != "" && !containsString(domain.LegalCaseStatuses, filter.Status) {
		return repository.PageResult[domain.LegalCase]{}, ErrLegalCaseInvalidStatus
	}
	if filter.Kind != "" && !containsString(domain.LegalCaseKinds, filter.Kind) {
		return repository.PageResult[domain.LegalCase]{}, ErrLegalCaseInvalidKind
	}
	return s.repo.ListPaged(caller, filter, req)
}

// AssignHandler puts a support or admin user in charge of the case and moves
// it to in_review.
func (s *LegalService) AssignHandler(ctx context.Context, caller repository.Caller, caseID, handlerID uint) (*domain.LegalCase, error) {
	handler, err := s.userRepo.FindByID(handlerID)
	if err != nil {
		return nil, err
	}
	if !domain.IsCrossTenant(handler.Role) {
		return nil, ErrLegalCaseHandlerMissing
	}
	updates := map[string]any{"handler_id": handlerID, "status": domain.LegalCaseStatusInReview}
	if err := s.repo.Update(caller, caseID, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(caller, caseID)
}

func (s *LegalService) Close(ctx context.Context, caller repository.Caller, caseID uint) (*domain.LegalCase, error) {
	legalCase, err := s.repo.FindByID(caller, caseID)
	if err != nil {
		return nil, err
	}
	if legalCase.Status == domain.LegalCaseStatusClosed {
		return nil, ErrLegalCaseAlreadyClosed
	}
	now := time.Now()
	if err := s.repo.Update(caller, caseID, map[string]any{"status": domain.LegalCaseStatusClosed, "closed_at": now}); err != nil {
		return nil, err
	}
	return s.repo.FindByID(caller, caseID)
}
