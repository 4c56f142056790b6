package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/security"
)

var defaultTemplates = []domain.NotificationTemplate{
	{
		Key:     "payment_reminder",
		Name:    "Recordatorio de pago",
		Subject: "Tu arriendo de {{property}} vence el {{due_date}}",
		Body:    "Hola {{tenant}}, recuerda que el pago de {{amount}} por {{property}} vence el {{due_date}}.",
	},
	{
		Key:     "contract_terminated",
		Name:    "Contrato terminado",
		Subject: "Contrato de {{property}} terminado",
		Body:    "El contrato de arriendo de {{property}} fue terminado el {{ended_at}}.",
	},
	{
		Key:     "visit_scheduled",
		Name:    "Visita agendada",
		Subject: "Visita a {{property}} agendada",
		Body:    "{{visitor}} visitará {{property}} el {{scheduled_at}}. Corredor a cargo: {{broker}}.",
	},
	{
		Key:     "ticket_assigned",
		Name:    "Ticket asignado",
		Subject: "Ticket #{{ticket_id}} asignado",
		Body:    "Hola {{provider}}, se te asignó el ticket \"{{title}}\" en {{property}}.",
	},
}

// SeedTemplates installs the default notification templates. Existing rows
// are left untouched so admin edits survive restarts.
func SeedTemplates(db *gorm.DB) error {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(context.Background(), "seed_templates", time.Since(start))
	}()

	for _, tpl := range defaultTemplates {
		if err := db.Where("key = ?", tpl.Key).FirstOrCreate(&tpl).Error; err != nil {
			observability.RecordDatabaseStartupEvent(context.Background(), "seed_templates", "error")
			return fmt.Errorf("seed template %s: %w", tpl.Key, err)
		}
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "seed_templates", "success")
	return nil
}

// SeedDemo loads a small demo dataset: one owner with two properties, an
// active contract with payment history, a couple of maintenance tickets, a
// scheduled visit and an open legal case. It only runs when the demo flag is
// set explicitly; it is never a fallback for a failed query.
func SeedDemo(db *gorm.DB) error {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(context.Background(), "seed_demo", time.Since(start))
	}()
	if err := seedDemo(db); err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "seed_demo", "error")
		return err
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "seed_demo", "success")
	return nil
}

func seedDemo(db *gorm.DB) error {
	hash, err := security.HashPassword("Demo-Pass-2026!")
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	owner := domain.User{Email: "demo.owner@arriendo.dev", Name: "Carolina Reyes", Role: domain.RoleOwner, PasswordHash: hash, Phone: "+56 9 5555 0001"}
	tenant := domain.User{Email: "demo.tenant@arriendo.dev", Name: "Matías Fuentes", Role: domain.RoleTenant, PasswordHash: hash, Phone: "+56 9 5555 0002"}
	broker := domain.User{Email: "demo.broker@arriendo.dev", Name: "Valentina Soto", Role: domain.RoleBroker, PasswordHash: hash, Phone: "+56 9 5555 0003"}
	provider := domain.User{Email: "demo.provider@arriendo.dev", Name: "Jorge Muñoz", Role: domain.RoleProvider, PasswordHash: hash, Phone: "+56 9 5555 0004"}
	for _, u := range []*domain.User{&owner, &tenant, &broker, &provider} {
		if err := db.Where("email = ?", u.Email).FirstOrCreate(u).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	occupied := domain.Property{
		OwnerID: owner.ID, BrokerID: &broker.ID,
		Title: "Departamento Ñuñoa 2D1B", Address: "Av. Irarrázaval 3400, depto 502",
		Commune: "Ñuñoa", Status: domain.PropertyStatusOccupied,
		RentAmount: 650000, Bedrooms: 2, Bathrooms: 1, AreaM2: 62,
		Description: "Departamento luminoso a pasos del metro Chile España.",
	}
	available := domain.Property{
		OwnerID: owner.ID,
		Title:   "Casa Maipú 3D2B", Address: "Pasaje Los Aromos 118",
		Commune: "Maipú", Status: domain.PropertyStatusAvailable,
		RentAmount: 780000, Bedrooms: 3, Bathrooms: 2, AreaM2: 98,
		Description: "Casa con patio y estacionamiento, cerca de Plaza Maipú.",
	}
	for _, p := range []*domain.Property{&occupied, &available} {
		if err := db.Where("owner_id = ? AND title = ?", p.OwnerID, p.Title).FirstOrCreate(p).Error; err != nil {
			return fmt.Errorf("seed property %s: %w", p.Title, err)
		}
	}

	now := time.Now().UTC()
	contract := domain.Contract{
		PropertyID: occupied.ID, OwnerID: owner.ID, TenantID: tenant.ID, BrokerID: &broker.ID,
		Status:     domain.ContractStatusActive,
		RentAmount: occupied.RentAmount,
		StartDate:  now.AddDate(0, -8, 0),
		EndDate:    now.AddDate(0, 4, 0),
	}
	if err := db.Where("property_id = ? AND tenant_id = ?", contract.PropertyID, contract.TenantID).
		FirstOrCreate(&contract).Error; err != nil {
		return fmt.Errorf("seed contract: %w", err)
	}

	// Paid history for the last five months plus a pending one for the
	// current month, so the payment trend has something to show.
	for i := 5; i >= 0; i-- {
		due := time.Date(now.Year(), now.Month(), 5, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		payment := domain.Payment{
			ContractID: contract.ID, OwnerID: owner.ID, TenantID: tenant.ID,
			Amount: contract.RentAmount, Status: domain.PaymentStatusPending, DueDate: due,
		}
		if i > 0 {
			paidAt := due.AddDate(0, 0, 2)
			payment.Status = domain.PaymentStatusPaid
			payment.Method = "transferencia"
			payment.Reference = fmt.Sprintf("DEMO-%s", due.Format("200601"))
			payment.PaidAt = &paidAt
		}
		if err := db.Where("contract_id = ? AND due_date = ?", payment.ContractID, payment.DueDate).
			FirstOrCreate(&payment).Error; err != nil {
			return fmt.Errorf("seed payment %s: %w", due.Format("2006-01"), err)
		}
	}

	openTicket := domain.MaintenanceTicket{
		PropertyID: occupied.ID, OwnerID: owner.ID, ReporterID: tenant.ID,
		Title: "Filtración en el baño", Description: "Gotea la llave de la ducha.",
		Priority: "high", Status: domain.TicketStatusOpen,
	}
	assignedTicket := domain.MaintenanceTicket{
		PropertyID: occupied.ID, OwnerID: owner.ID, ReporterID: tenant.ID, ProviderID: &provider.ID,
		Title: "Enchufe suelto en cocina", Description: "El enchufe junto al refrigerador quedó suelto.",
		Priority: "medium", Status: domain.TicketStatusInProgress,
	}
	for _, tk := range []*domain.MaintenanceTicket{&openTicket, &assignedTicket} {
		if err := db.Where("property_id = ? AND title = ?", tk.PropertyID, tk.Title).FirstOrCreate(tk).Error; err != nil {
			return fmt.Errorf("seed ticket %s: %w", tk.Title, err)
		}
	}

	visit := domain.Visit{
		PropertyID: available.ID, OwnerID: owner.ID, BrokerID: broker.ID,
		VisitorName: "Familia Contreras",
		ScheduledAt: now.AddDate(0, 0, 7).Truncate(time.Hour),
		Status:      domain.VisitStatusScheduled,
		Notes:       "Interesados en arriendo anual.",
	}
	if err := db.Where("property_id = ? AND visitor_name = ?", visit.PropertyID, visit.VisitorName).
		FirstOrCreate(&visit).Error; err != nil {
		return fmt.Errorf("seed visit: %w", err)
	}

	legal := domain.LegalCase{
		ContractID: contract.ID, OwnerID: owner.ID, TenantID: tenant.ID,
		Kind:    "deposit_dispute",
		Summary: "Diferencia sobre descuentos al depósito de garantía.",
		Status:  domain.LegalCaseStatusOpen,
	}
	if err := db.Where("contract_id = ? AND kind = ?", legal.ContractID, legal.Kind).
		FirstOrCreate(&legal).Error; err != nil {
		return fmt.Errorf("seed legal case: %w", err)
	}

	return SeedTemplates(db)
}
