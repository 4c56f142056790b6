package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/observability"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type UserFilter struct {
	Role   domain.Role
	Status string
}

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id uint) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	ListPaged(filter UserFilter, req PageRequest) (PageResult[domain.User], error)
	Update(id uint, updates map[string]any) error
	TouchLastLogin(id uint, at time.Time) error
	CountByRole() (map[domain.Role]int64, error)
}

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *domain.User) error {
	var existing int64
	if err := r.db.Model(&domain.User{}).Where("email = ?", user.Email).Count(&existing).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "user", "create", "error")
		return err
	}
	if existing > 0 {
		observability.RecordRepositoryOperation(context.Background(), "user", "create", "conflict")
		return ErrEmailTaken
	}
	if err := r.db.Create(user).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "user", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "user", "create", "success")
	return nil
}

func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "user", "find_by_id", "not_found")
			return nil, ErrUserNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "user", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "user", "find_by_id", "success")
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "user", "find_by_email", "not_found")
			return nil, ErrUserNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "user", "find_by_email", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "user", "find_by_email", "success")
	return &user, nil
}

func (r *GormUserRepository) ListPaged(filter UserFilter, req PageRequest) (PageResult[domain.User], error) {
	normalized := normalizePageRequest(req)
	result := PageResult[domain.User]{Page: normalized.Page, Limit: normalized.Limit}

	base := r.db.Model(&domain.User{})
	if filter.Role != "" {
		base = base.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if err := base.Count(&result.Total).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "user", "list_paged", "error")
		return PageResult[domain.User]{}, err
	}
	offset := (normalized.Page - 1) * normalized.Limit
	if err := base.Order("id desc").Offset(offset).Limit(normalized.Limit).Find(&result.Items).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "user", "list_paged", "error")
		return PageResult[domain.User]{}, err
	}
	result.Pages = calcPages(result.Total, normalized.Limit)
	observability.RecordRepositoryOperation(context.Background(), "user", "list_paged", "success")
	return result, nil
}

func (r *GormUserRepository) Update(id uint, updates map[string]any) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "user", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "user", "update", "not_found")
		return ErrUserNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "user", "update", "success")
	return nil
}

func (r *GormUserRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).Update("last_login_at", at).Error
}

func (r *GormUserRepository) CountByRole() (map[domain.Role]int64, error) {
	type roleCount struct {
		Role  domain.Role
		Count int64
	}
	var rows []roleCount
	err := r.db.Model(&domain.User{}).
		Select("role, count(*) as count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "user", "count_by_role", "error")
		return nil, err
	}
	out := make(map[domain.Role]int64, len(rows))
	for _, row := range rows {
		out[row.Role] = row.Count
	}
	observability.RecordRepositoryOperation(context.Background(), "user", "count_by_role", "success")
	return out, nil
}
