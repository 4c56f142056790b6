package repository

import (
	"testing"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"gorm.io/gorm"
)

func seedTwoOwnerWorld(t *testing.T, db *gorm.DB) (ownerA, ownerB, tenantA, provider domain.User) {
	t.Helper()
	ownerA = domain.User{Email: "owner.a@example.com", Name: "Owner A", Role: domain.RoleOwner}
	ownerB = domain.User{Email: "owner.b@example.com", Name: "Owner B", Role: domain.RoleOwner}
	tenantA = domain.User{Email: "tenant.a@example.com", Name: "Tenant A", Role: domain.RoleTenant}
	provider = domain.User{Email: "provider@example.com", Name: "Provider", Role: domain.RoleProvider}
	for _, u := range []*domain.User{&ownerA, &ownerB, &tenantA, &provider} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user %s: %v", u.Email, err)
		}
	}

	propA := domain.Property{OwnerID: ownerA.ID, Title: "Depto Providencia", Address: "Av. Providencia 123", Commune: "Providencia", Status: domain.PropertyStatusOccupied, RentAmount: 550000}
	propB := domain.Property{OwnerID: ownerB.ID, Title: "Casa Nunoa", Address: "Calle Irarrazaval 456", Commune: "Nunoa", Status: domain.PropertyStatusAvailable, RentAmount: 800000}
	for _, p := range []*domain.Property{&propA, &propB} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed property: %v", err)
		}
	}

	contractA := domain.Contract{PropertyID: propA.ID, OwnerID: ownerA.ID, TenantID: tenantA.ID, Status: domain.ContractStatusActive, RentAmount: 550000, StartDate: time.Now().AddDate(-1, 0, 0), EndDate: time.Now().AddDate(1, 0, 0)}
	if err := db.Create(&contractA).Error; err != nil {
		t.Fatalf("seed contract: %v", err)
	}

	payA := domain.Payment{ContractID: contractA.ID, OwnerID: ownerA.ID, TenantID: tenantA.ID, Amount: 550000, Status: domain.PaymentStatusPending, DueDate: time.Now()}
	if err := db.Create(&payA).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	ticketA := domain.MaintenanceTicket{PropertyID: propA.ID, OwnerID: ownerA.ID, ReporterID: tenantA.ID, ProviderID: &provider.ID, Title: "Fuga de agua", Priority: "high", Status: domain.TicketStatusAssigned}
	if err := db.Create(&ticketA).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	return ownerA, ownerB, tenantA, provider
}

// Two owners must never see each other's rows; the same query with a
// different caller yields disjoint result sets.
func TestScopesAreDisjointAcrossOwners(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	ownerA, ownerB, _, _ := seedTwoOwnerWorld(t, db)

	props := NewPropertyRepository(db)

	pageA, err := props.ListPaged(Caller{ID: ownerA.ID, Role: domain.RoleOwner}, PropertyFilter{}, PageRequest{})
	if err != nil {
		t.Fatalf("list owner A: %v", err)
	}
	pageB, err := props.ListPaged(Caller{ID: ownerB.ID, Role: domain.RoleOwner}, PropertyFilter{}, PageRequest{})
	if err != nil {
		t.Fatalf("list owner B: %v", err)
	}
	if pageA.Total != 1 || pageB.Total != 1 {
		t.Fatalf("expected one property each, got A=%d B=%d", pageA.Total, pageB.Total)
	}
	for _, p := range pageA.Items {
		if p.OwnerID != ownerA.ID {
			t.Fatalf("owner A saw property owned by %d", p.OwnerID)
		}
	}
	for _, p := range pageB.Items {
		if p.OwnerID != ownerB.ID {
			t.Fatalf("owner B saw property owned by %d", p.OwnerID)
		}
	}
}

func TestScopeDeniesRolesWithoutRule(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	_, _, tenantA, provider := seedTwoOwnerWorld(t, db)

	props := NewPropertyRepository(db)

	// Tenants reach properties only through contracts, never the list.
	page, err := props.ListPaged(Caller{ID: tenantA.ID, Role: domain.RoleTenant}, PropertyFilter{}, PageRequest{})
	if err != nil {
		t.Fatalf("list as tenant: %v", err)
	}
	if page.Total != 0 || len(page.Items) != 0 {
		t.Fatalf("tenant should see no properties, got %d", page.Total)
	}

	// A role string the scope has no rule for gets nothing, not everything.
	page, err = props.ListPaged(Caller{ID: provider.ID, Role: domain.Role("intruder")}, PropertyFilter{}, PageRequest{})
	if err != nil {
		t.Fatalf("list with unknown role: %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("unknown role should be denied, got %d rows", page.Total)
	}
}

func TestScopeCrossTenantRolesSeeEverything(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	seedTwoOwnerWorld(t, db)

	props := NewPropertyRepository(db)
	admin := Caller{ID: 9999, Role: domain.RoleAdmin}

	page, err := props.ListPaged(admin, PropertyFilter{}, PageRequest{})
	if err != nil {
		t.Fatalf("list as admin: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("admin should see both properties, got %d", page.Total)
	}
}

func TestTicketScopePerColumn(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	ownerA, ownerB, tenantA, provider := seedTwoOwnerWorld(t, db)

	tickets := NewTicketRepository(db)

	for _, tc := range []struct {
		name   string
		caller Caller
		want   int64
	}{
		{"owner of property", Caller{ID: ownerA.ID, Role: domain.RoleOwner}, 1},
		{"other owner", Caller{ID: ownerB.ID, Role: domain.RoleOwner}, 0},
		{"reporter tenant", Caller{ID: tenantA.ID, Role: domain.RoleTenant}, 1},
		{"assigned provider", Caller{ID: provider.ID, Role: domain.RoleProvider}, 1},
		{"other provider", Caller{ID: provider.ID + 100, Role: domain.RoleProvider}, 0},
	} {
		page, err := tickets.ListPaged(tc.caller, TicketFilter{}, PageRequest{})
		if err != nil {
			t.Fatalf("%s: list tickets: %v", tc.name, err)
		}
		if page.Total != tc.want {
			t.Fatalf("%s: got %d tickets, want %d", tc.name, page.Total, tc.want)
		}
	}
}

func TestScopedFindByIDHidesForeignRows(t *testing.T) {
	db := newRepositoryDBForTest(t)
	migrateAll(t, db)
	ownerA, ownerB, _, _ := seedTwoOwnerWorld(t, db)

	props := NewPropertyRepository(db)

	pageA, err := props.ListPaged(Caller{ID: ownerA.ID, Role: domain.RoleOwner}, PropertyFilter{}, PageRequest{})
	if err != nil || len(pageA.Items) != 1 {
		t.Fatalf("list owner A: %v (%d items)", err, len(pageA.Items))
	}
	propertyOfA := pageA.Items[0].ID

	if _, err := props.FindByID(Caller{ID: ownerB.ID, Role: domain.RoleOwner}, propertyOfA); err != ErrPropertyNotFound {
		t.Fatalf("owner B fetching A's property: got %v, want ErrPropertyNotFound", err)
	}
	if err := props.Update(Caller{ID: ownerB.ID, Role: domain.RoleOwner}, propertyOfA, map[string]any{"title": "hijacked"}); err != ErrPropertyNotFound {
		t.Fatalf("owner B updating A's property: got %v, want ErrPropertyNotFound", err)
	}
}
