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
	ErrVisitInvalidVisitor = errors.New("visitor name is required")
	ErrVisitInPast         = errors.New("visit must be scheduled in the future")
	ErrVisitInvalidStatus  = errors.New("unknown visit status")
	ErrVisitNotScheduled   = errors.New("visit is not in scheduled state")
)

type ScheduleVisitInput struct {
	PropertyID  uint
	VisitorName string
	ScheduledAt time.Time
	Notes       string
}

type VisitService struct {
	repo         repository.VisitRepository
	propertyRepo repository.PropertyRepository
	now          func() time.Time
}

func NewVisitService(repo repository.VisitRepository, propertyRepo repository.PropertyRepository) *VisitService {
	return &VisitService{repo: repo, propertyRepo: propertyRepo, now: time.Now}
}

// Schedule books a showing on a property in the caller's scope. Brokers book
// for properties assigned to them; the owner id rides along for owner
// visibility.
func (s *VisitService) Schedule(ctx context.Context, caller repository.Caller, input ScheduleVisitInput) (*domain.Visit, error) {
	visitor := strings.TrimSpace(input.VisitorName)
	if visitor == "" {
		return nil, ErrVisitInvalidVisitor
	}
	if !input.ScheduledAt.After(s.now()) {
		return nil, ErrVisitInPast
	}
	property, err := s.propertyRepo.FindByID(caller, input.PropertyID)
	if err != nil {
		return nil, err
	}

	visit := &domain.Visit{
		PropertyID:  property.ID,
		OwnerID:     property.OwnerID,
		VisitorName: visitor,
		ScheduledAt: input.ScheduledAt,
		Status:      domain.VisitStatusScheduled,
		Notes:       strings.TrimSpace(input.Notes),
	}
	if caller.Role == domain.RoleBroker {
		visit.BrokerID = caller.ID
	} else if property.BrokerID != nil {
		visit.BrokerID = *property.BrokerID
	}
	if err := s.repo.Create(visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *VisitService) GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.Visit, error) {
	return s.repo.FindByID(caller, id)
}

func (s *VisitService) ListPaged(ctx context.Context, caller repository.Caller, filter repository.VisitFilter, req repository.PageRequest) (repository.PageResult[domain.Visit], error) {
	if filter.Status != "" && !containsString(domain.VisitStatuses, filter.Status) {
		return repository.PageResult[domain.Visit]{}, ErrVisitInvalidStatus
	}
	return s.repo.ListPaged(caller, filter, req)
}

func (s *VisitService) Complete(ctx context.Context, caller repository.Caller, id uint, notes string) (*domain.Visit, error) {
	return s.transition(caller, id, domain.VisitStatusCompleted, notes)
}

func (s *VisitService) Cancel(ctx context.Context, caller repository.Caller, id uint, notes string) (*domain.Visit, error) {
	return s.transition(caller, id, domain.VisitStatusCancelled, notes)
}

func (s *VisitService) transition(caller repository.Caller, id uint, status, notes string) (*domain.Visit, error) {
	visit, err := s.repo.FindByID(caller, id)
	if err != nil {
		return nil, err
	}
	if visit.Status != domain.VisitStatusScheduled {
		return nil, ErrVisitNotScheduled
	}
	updates := map[string]any{"status": status}
	if strings.TrimSpace(notes) != "" {
		updates["notes"] = strings.TrimSpace(notes)
	}
	if err := s.repo.Update(caller, id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(caller, id)
}
