package service

import (
	"context"
	"errors"
	"testing"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
	repogomock "github.com/arriendohq/arriendo/internal/repository/gomock"
	"go.uber.org/mock/gomock"
)

func newTicketServiceForTest(ctrl *gomock.Controller) (*TicketService, *repogomock.MockTicketRepository, *repogomock.MockPropertyRepository, *repogomock.MockUserRepository) {
	ticketRepo := repogomock.NewMockTicketRepository(ctrl)
	propertyRepo := repogomock.NewMockPropertyRepository(ctrl)
	userRepo := repogomock.NewMockUserRepository(ctrl)
	return NewTicketService(ticketRepo, propertyRepo, userRepo), ticketRepo, propertyRepo, userRepo
}

func TestTicketProjectionFallsBackWhenRelationsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, ticketRepo, _, _ := newTicketServiceForTest(ctrl)

	caller := repository.Caller{ID: 3, Role: domain.RoleTenant}
	ticketRepo.EXPECT().FindByID(caller, uint(12)).Return(&domain.MaintenanceTicket{
		ID:         12,
		PropertyID: 5,
		OwnerID:    1,
		ReporterID: 3,
		Title:      "Fuga de agua en la cocina",
		Priority:   "high",
		Status:     domain.TicketStatusOpen,
	}, nil)

	view, err := svc.GetByID(context.Background(), caller, 12)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if view.OwnerName != "Propietario no identificado" {
		t.Errorf("owner fallback: got %q", view.OwnerName)
	}
	if view.PropertyName != "No disponible" {
		t.Errorf("property fallback: got %q", view.PropertyName)
	}
	if view.ProviderName != "Sin asignar" {
		t.Errorf("provider fallback: got %q", view.ProviderName)
	}
}

func TestTicketProjectionUsesRelationNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, ticketRepo, _, _ := newTicketServiceForTest(ctrl)

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	ticketRepo.EXPECT().FindByID(caller, uint(7)).Return(&domain.MaintenanceTicket{
		ID:         7,
		PropertyID: 5,
		OwnerID:    1,
		Title:      "Calefont no enciende",
		Priority:   "medium",
		Status:     domain.TicketStatusAssigned,
		Property:   &domain.Property{ID: 5, Title: "Depto Providencia 2D"},
		Owner:      &domain.User{ID: 1, Name: "Carla Rojas"},
		Provider:   &domain.User{ID: 8, Name: "Gasfiteria Soto"},
	}, nil)

	view, err := svc.GetByID(context.Background(), caller, 7)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if view.PropertyName != "Depto Providencia 2D" || view.OwnerName != "Carla Rojas" || view.ProviderName != "Gasfiteria Soto" {
		t.Errorf("unexpected projection: %+v", view)
	}
}

func TestAssignProviderRejectsNonProviderRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, ticketRepo, _, userRepo := newTicketServiceForTest(ctrl)

	userRepo.EXPECT().FindByID(uint(4)).Return(&domain.User{ID: 4, Role: domain.RoleTenant}, nil)
	ticketRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	if _, err := svc.AssignProvider(context.Background(), caller, 7, 4); !errors.Is(err, ErrAssigneeNotProvider) {
		t.Fatalf("expected ErrAssigneeNotProvider, got %v", err)
	}
}

func TestTicketStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{domain.TicketStatusOpen, domain.TicketStatusAssigned, true},
		{domain.TicketStatusOpen, domain.TicketStatusResolved, false},
		{domain.TicketStatusAssigned, domain.TicketStatusInProgress, true},
		{domain.TicketStatusInProgress, domain.TicketStatusResolved, true},
		{domain.TicketStatusResolved, domain.TicketStatusClosed, true},
		{domain.TicketStatusResolved, domain.TicketStatusOpen, false},
		{domain.TicketStatusClosed, domain.TicketStatusOpen, false},
	}
	for _, tc := range cases {
		if got := validTicketTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestCreateTicketValidatesTitleBeforeTouchingRepos(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, ticketRepo, propertyRepo, _ := newTicketServiceForTest(ctrl)

	ticketRepo.EXPECT().Create(gomock.Any()).Times(0)
	propertyRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

	caller := repository.Caller{ID: 3, Role: domain.RoleTenant}
	if _, err := svc.Create(context.Background(), caller, CreateTicketInput{PropertyID: 5, Title: "ab"}); !errors.Is(err, ErrTicketInvalidTitle) {
		t.Fatalf("expected ErrTicketInvalidTitle, got %v", err)
	}
}
