package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
)

var (
	ErrTemplateInvalidKey  = errors.New("key must be lowercase letters, digits and underscores")
	ErrTemplateEmptyBody   = errors.New("body is required")
	ErrTemplateMissingVars = errors.New("missing template variables")
)

var (
	templateKeyRe = regexp.MustCompile(`^[a-z0-9_]{3,64}$`)
	placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)
)

// TemplateService is the only path to notification templates; nothing holds
// an in-memory template table that mutations could race on.
type TemplateService interface {
	Get(ctx context.Context, key string) (*domain.NotificationTemplate, error)
	List(ctx context.Context) ([]domain.NotificationTemplate, error)
	Save(ctx context.Context, caller repository.Caller, tpl *domain.NotificationTemplate) error
	Delete(ctx context.Context, key string) error
	Render(ctx context.Context, key string, vars map[string]string) (subject string, body string, err error)
}

type DBTemplateService struct {
	repo repository.TemplateRepository
}

func NewTemplateService(repo repository.TemplateRepository) *DBTemplateService {
	return &DBTemplateService{repo: repo}
}

func (s *DBTemplateService) Get(ctx context.Context, key string) (*domain.NotificationTemplate, error) {
	return s.repo.FindByKey(key)
}

func (s *DBTemplateService) List(ctx context.Context) ([]domain.NotificationTemplate, error) {
	return s.repo.List()
}

func (s *DBTemplateService) Save(ctx context.Context, caller repository.Caller, tpl *domain.NotificationTemplate) error {
	tpl.Key = strings.TrimSpace(tpl.Key)
	if !templateKeyRe.MatchString(tpl.Key) {
		return ErrTemplateInvalidKey
	}
	if strings.TrimSpace(tpl.Body) == "" {
		return ErrTemplateEmptyBody
	}
	tpl.UpdatedBy = caller.ID
	return s.repo.Upsert(tpl)
}

func (s *DBTemplateService) Delete(ctx context.Context, key string) error {
	return s.repo.DeleteByKey(key)
}

// Render substitutes {{var}} placeholders. Unknown placeholders fail rather
// than leak raw braces to a tenant's inbox.
func (s *DBTemplateService) Render(ctx context.Context, key string, vars map[string]string) (string, string, error) {
	tpl, err := s.repo.FindByKey(key)
	if err != nil {
		return "", "", err
	}
	subject, missingSubject := substitute(tpl.Subject, vars)
	body, missingBody := substitute(tpl.Body, vars)
	if len(missingSubject) > 0 || len(missingBody) > 0 {
		return "", "", ErrTemplateMissingVars
	}
	return subject, body, nil
}

func substitute(text string, vars map[string]string) (string, []string) {
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		value, ok := vars[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
