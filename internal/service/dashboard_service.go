package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
)

// DashboardSummary is the role-scoped landing view. Every figure is computed
// under the caller's scope; two users with different scopes get different
// numbers from the same query.
type DashboardSummary struct {
	Role domain.Role `json:"role"`

	Properties      int64   `json:"properties"`
	OccupancyRate   float64 `json:"occupancy_rate"`   // percent, one decimal
	ActiveContracts int64   `json:"active_contracts"`
	CollectionRate  float64 `json:"collection_rate"` // percent, one decimal
	OpenTickets     int64   `json:"open_tickets"`
	UpcomingVisits  int64   `json:"upcoming_visits"`
	OpenLegalCases  int64   `json:"open_legal_cases"`

	PaymentTrend []TrendPoint `json:"payment_trend"`

	UsersByRole map[domain.Role]int64 `json:"users_by_role,omitempty"` // cross-tenant roles only
}

type DashboardService struct {
	propertyRepo repository.PropertyRepository
	contractRepo repository.ContractRepository
	paymentSvc   *PaymentService
	ticketRepo   repository.TicketRepository
	visitRepo    repository.VisitRepository
	legalRepo    repository.LegalCaseRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

func NewDashboardService(
	propertyRepo repository.PropertyRepository,
	contractRepo repository.ContractRepository,
	paymentSvc *PaymentService,
	ticketRepo repository.TicketRepository,
	visitRepo repository.VisitRepository,
	legalRepo repository.LegalCaseRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		propertyRepo: propertyRepo,
		contractRepo: contractRepo,
		paymentSvc:   paymentSvc,
		ticketRepo:   ticketRepo,
		visitRepo:    visitRepo,
		legalRepo:    legalRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// Summary fans the independent scoped counts out concurrently and assembles
// one response.
func (s *DashboardService) Summary(ctx context.Context, caller repository.Caller) (*DashboardSummary, error) {
	start := s.now()
	status := "success"
	defer func() {
		observability.RecordDashboardRequestDuration(ctx, string(caller.Role), status, time.Since(start))
	}()

	summary := &DashboardSummary{Role: caller.Role}
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		byStatus, err := s.propertyRepo.CountByStatus(caller)
		if err != nil {
			return err
		}
		var total, occupied int64
		for st, n := range byStatus {
			total += n
			if st == domain.PropertyStatusOccupied {
				occupied = n
			}
		}
		summary.Properties = total
		if total > 0 {
			summary.OccupancyRate = roundOneDecimal(float64(occupied) / float64(total) * 100)
		}
		return nil
	})
	g.Go(func() error {
		count, err := s.contractRepo.ActiveCount(caller)
		summary.ActiveContracts = count
		return err
	})
	g.Go(func() error {
		rate, err := s.paymentSvc.CollectionRate(gctx, caller, monthStart, monthEnd)
		summary.CollectionRate = rate
		return err
	})
	g.Go(func() error {
		trend, err := s.paymentSvc.Trend(gctx, caller, trendDefaultMonths)
		summary.PaymentTrend = trend
		return err
	})
	g.Go(func() error {
		count, err := s.ticketRepo.OpenCount(caller)
		summary.OpenTickets = count
		return err
	})
	g.Go(func() error {
		count, err := s.visitRepo.UpcomingCount(caller, now)
		summary.UpcomingVisits = count
		return err
	})
	g.Go(func() error {
		count, err := s.legalRepo.OpenCount(caller)
		summary.OpenLegalCases = count
		return err
	})
	if caller.CrossTenant() {
		g.Go(func() error {
			byRole, err := s.userRepo.CountByRole()
			summary.UsersByRole = byRole
			return err
		})
	}

	if err := g.Wait(); err != nil {
		status = "error"
		return nil, err
	}
	return summary, nil
}
