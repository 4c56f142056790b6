package service

import (
	"context"
	"io"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
)

// Handler-facing interfaces. Handlers depend on these, never on the concrete
// services, so handler tests can mock the whole service layer.

type AuthServiceInterface interface {
	GoogleLoginURL(state string) string
	LoginWithGoogleCode(code, ua, ip string) (*LoginResult, error)
	Register(input RegisterInput, ua, ip string) (*LoginResult, error)
	Login(email, password, ua, ip string) (*LoginResult, error)
	Refresh(refreshToken, ua, ip string) (*LoginResult, error)
	Logout(userID uint) error
	ChangePassword(userID uint, currentPassword, newPassword string) error
	ParseUserID(subject string) (uint, error)
}

type UserServiceInterface interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	ListPaged(ctx context.Context, filter repository.UserFilter, req repository.PageRequest) (repository.PageResult[domain.User], error)
	UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*domain.User, error)
	SetRole(ctx context.Context, id uint, role domain.Role) (*domain.User, error)
	SetStatus(ctx context.Context, id uint, status string) (*domain.User, error)
}

type PropertyServiceInterface interface {
	Create(ctx context.Context, caller repository.Caller, ownerID uint, input CreatePropertyInput) (*domain.Property, error)
	GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.Property, error)
	ListPaged(ctx context.Context, caller repository.Caller, filter repository.PropertyFilter, req repository.PageRequest) (repository.PageResult[domain.Property], error)
	Update(ctx context.Context, caller repository.Caller, id uint, input UpdatePropertyInput) (*domain.Property, error)
	DeleteByID(ctx context.Context, caller repository.Caller, id uint) error
	UploadPhoto(ctx context.Context, caller repository.Caller, propertyID uint, file io.Reader, size int64, contentType string) (string, error)
	DeletePhoto(ctx context.Context, caller repository.Caller, propertyID uint, objectKey string) error
	PhotoURLs(ctx context.Context, caller repository.Caller, propertyID uint) ([]string, error)
}

type ContractServiceInterface interface {
	Create(ctx context.Context, caller repository.Caller, input CreateContractInput) (*domain.Contract, error)
	GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.Contract, error)
	ListPaged(ctx context.Context, caller repository.Caller, filter repository.ContractFilter, req repository.PageRequest) (repository.PageResult[domain.Contract], error)
	Terminate(ctx context.Context, caller repository.Caller, id uint) (*domain.Contract, error)
	ExportHeader() []string
	ExportRows(ctx context.Context, caller repository.Caller, filter repository.ContractFilter) ([][]string, error)
}

type PaymentServiceInterface interface {
	Create(ctx context.Context, caller repository.Caller, input CreatePaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.Payment, error)
	ListPaged(ctx context.Context, caller repository.Caller, filter repository.PaymentFilter, req repository.PageRequest) (repository.PageResult[domain.Payment], error)
	MarkPaid(ctx context.Context, caller repository.Caller, id uint, method, reference string) (*domain.Payment, error)
	Trend(ctx context.Context, caller repository.Caller, months int) ([]TrendPoint, error)
	CollectionRate(ctx context.Context, caller repository.Caller, from, to time.Time) (float64, error)
}

type TicketServiceInterface interface {
	Create(ctx context.Context, caller repository.Caller, input CreateTicketInput) (*TicketView, error)
	GetByID(ctx context.Context, caller repository.Caller, id uint) (*TicketView, error)
	ListPaged(ctx context.Context, caller repository.Caller, filter repository.TicketFilter, req repository.PageRequest) (repository.PageResult[TicketView], error)
	AssignProvider(ctx context.Context, caller repository.Caller, ticketID, providerID uint) (*TicketView, error)
	UpdateStatus(ctx context.Context, caller repository.Caller, ticketID uint, status string) (*TicketView, error)
}

type VisitServiceInterface interface {
	Schedule(ctx context.Context, caller repository.Caller, input ScheduleVisitInput) (*domain.Visit, error)
	GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.Visit, error)
	ListPaged(ctx context.Context, caller repository.Caller, filter repository.VisitFilter, req repository.PageRequest) (repository.PageResult[domain.Visit], error)
	Complete(ctx context.Context, caller repository.Caller, id uint, notes string) (*domain.Visit, error)
	Cancel(ctx context.Context, caller repository.Caller, id uint, notes string) (*domain.Visit, error)
}

type LegalServiceInterface interface {
	Open(ctx context.Context, caller repository.Caller, input OpenLegalCaseInput) (*domain.LegalCase, error)
	GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.LegalCase, error)
	ListPaged(ctx context.Context, caller repository.Caller, filter repository.LegalCaseFilter, req repository.PageRequest) (repository.PageResult[domain.LegalCase], error)
	AssignHandler(ctx context.Context, caller repository.Caller, caseID, handlerID uint) (*domain.LegalCase, error)
	Close(ctx context.Context, caller repository.Caller, caseID uint) (*domain.LegalCase, error)
}

type DashboardServiceInterface interface {
	Summary(ctx context.Context, caller repository.Caller) (*DashboardSummary, error)
}
