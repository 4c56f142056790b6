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
	ErrTicketInvalidTitle      = errors.New("title must be between 3 and 255 characters")
	ErrTicketInvalidPriority   = errors.New("unknown ticket priority")
	ErrTicketInvalidStatus     = errors.New("unknown ticket status")
	ErrTicketInvalidTransition = errors.New("invalid ticket status transition")
	ErrAssigneeNotProvider     = errors.New("assignee must have the provider role")
)

type CreateTicketInput struct {
	PropertyID  uint
	Title       string
	Description string
	Priority    string
}

// TicketView is the projection handed to clients: relation names resolved
// with display fallbacks so a deleted user never breaks the ticket list.
type TicketView struct {
	ID           uint       `json:"id"`
	PropertyID   uint       `json:"property_id"`
	PropertyName string     `json:"property_name"`
	OwnerName    string     `json:"owner_name"`
	ProviderName string     `json:"provider_name"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type TicketService struct {
	repo         repository.TicketRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewTicketService(repo repository.TicketRepository, propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) *TicketService {
	return &TicketService{repo: repo, propertyRepo: propertyRepo, userRepo: userRepo}
}

// Create opens a ticket. Tenants report against any property; the property's
// owner id is denormalized onto the row so owner scoping stays join-free.
func (s *TicketService) Create(ctx context.Context, caller repository.Caller, input CreateTicketInput) (*TicketView, error) {
	title := strings.TrimSpace(input.Title)
	if len(title) < 3 || len(title) > 255 {
		return nil, ErrTicketInvalidTitle
	}
	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}
	if !containsString(domain.TicketPriorities, priority) {
		return nil, ErrTicketInvalidPriority
	}

	// The reporter may not have property scope (tenants don't), so the
	// property is resolved cross-tenant here; visibility of the resulting
	// ticket is still governed by the ticket scope.
	property, err := s.propertyRepo.FindByID(repository.Caller{ID: caller.ID, Role: domain.RoleAdmin}, input.PropertyID)
	if err != nil {
		return nil, err
	}

	ticket := &domain.MaintenanceTicket{
		PropertyID:  property.ID,
		OwnerID:     property.OwnerID,
		ReporterID:  caller.ID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		Status:      domain.TicketStatusOpen,
	}
	if err := s.repo.Create(ticket); err != nil {
		return nil, err
	}
	return s.projectByID(caller, ticket.ID)
}

func (s *TicketService) GetByID(ctx context.Context, caller repository.Caller, id uint) (*TicketView, error) {
	return s.projectByID(caller, id)
}

func (s *TicketService) ListPaged(ctx context.Context, caller repository.Caller, filter repository.TicketFilter, req repository.PageRequest) (repository.PageResult[TicketView], error) {
	if filter.Status != "" && !containsString(domain.TicketStatuses, filter.Status) {
		return repository.PageResult[TicketView]{}, ErrTicketInvalidStatus
	}
	if filter.Priority != "" && !containsString(domain.TicketPriorities, filter.Priority) {
		return repository.PageResult[TicketView]{}, ErrTicketInvalidPriority
	}
	page, err := s.repo.ListPaged(caller, filter, req)
	if err != nil {
		return repository.PageResult[TicketView]{}, err
	}
	views := make([]TicketView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, projectTicket(&page.Items[i]))
	}
	return repository.PageResult[TicketView]{
		Items: views,
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Pages: page.Pages,
	}, nil
}

// AssignProvider hands the ticket to a provider. The assignee's role is
// checked through the one provider predicate; anything else is rejected.
func (s *TicketService) AssignProvider(ctx context.Context, caller repository.Caller, ticketID, providerID uint) (*TicketView, error) {
	assignee, err := s.userRepo.FindByID(providerID)
	if err != nil {
		return nil, err
	}
	if !domain.IsProviderRole(assignee.Role) {
		return nil, ErrAssigneeNotProvider
	}
	updates := map[string]any{"provider_id": providerID, "status": domain.TicketStatusAssigned}
	if err := s.repo.Update(caller, ticketID, updates); err != nil {
		return nil, err
	}
	return s.projectByID(caller, ticketID)
}

func (s *TicketService) UpdateStatus(ctx context.Context, caller repository.Caller, ticketID uint, status string) (*TicketView, error) {
	if !containsString(domain.TicketStatuses, status) {
		return nil, ErrTicketInvalidStatus
	}
	ticket, err := s.repo.FindByID(caller, ticketID)
	if err != nil {
		return nil, err
	}
	if !validTicketTransition(ticket.Status, status) {
		return nil, ErrTicketInvalidTransition
	}
	updates := map[string]any{"status": status}
	if status == domain.TicketStatusResolved {
		updates["resolved_at"] = time.Now()
	}
	if err := s.repo.Update(caller, ticketID, updates); err != nil {
		return nil, err
	}
	return s.projectByID(caller, ticketID)
}

func (s *TicketService) projectByID(caller repository.Caller, id uint) (*TicketView, error) {
	ticket, err := s.repo.FindByID(caller, id)
	if err != nil {
		return nil, err
	}
	view := projectTicket(ticket)
	return &view, nil
}

func projectTicket(t *domain.MaintenanceTicket) TicketView {
	propertyName := fallbackPropertyName
	if t.Property != nil {
		propertyName = t.Property.Title
	}
	ownerName := fallbackOwnerName
	if t.Owner != nil && t.Owner.Name != "" {
		ownerName = t.Owner.Name
	}
	providerName := fallbackUnassigned
	if t.Provider != nil && t.Provider.Name != "" {
		providerName = t.Provider.Name
	}
	return TicketView{
		ID:           t.ID,
		PropertyID:   t.PropertyID,
		PropertyName: propertyName,
		OwnerName:    ownerName,
		ProviderName: providerName,
		Title:        t.Title,
		Description:  t.Description,
		Priority:     t.Priority,
		Status:       t.Status,
		ResolvedAt:   t.ResolvedAt,
		CreatedAt:    t.CreatedAt,
	}
}

func validTicketTransition(from, to string) bool {
	switch from {
	case domain.TicketStatusOpen:
		return to == domain.TicketStatusAssigned || to == domain.TicketStatusClosed
	case domain.TicketStatusAssigned:
		return to == domain.TicketStatusInProgress || to == domain.TicketStatusClosed
	case domain.TicketStatusInProgress:
		return to == domain.TicketStatusResolved || to == domain.TicketStatusClosed
	case domain.TicketStatusResolved:
		return to == domain.TicketStatusClosed
	default:
		return false
	}
}
