package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
)

var (
	ErrPropertyInvalidTitle   = errors.New("title must be between 3 and 255 characters")
	ErrPropertyInvalidAddress = errors.New("address is required")
	ErrPropertyInvalidRent    = errors.New("rent amount must be greater than 0")
	ErrPropertyInvalidStatus  = errors.New("unknown property status")
	ErrPropertyNoUpdates      = errors.New("no updates provided")
	ErrNotPropertyOwner       = errors.New("only the owner can do this")
	ErrPhotoNotFound          = errors.New("photo not found")
)

type CreatePropertyInput struct {
	Title       string
	Address     string
	Commune     string
	RentAmount  int64
	Bedrooms    int
	Bathrooms   int
	AreaM2      float64
	Description string
	BrokerID    *uint
}

type UpdatePropertyInput struct {
	Title       *string
	Address     *string
	Commune     *string
	Status      *string
	RentAmount  *int64
	Description *string
	BrokerID    *uint
}

type PropertyService struct {
	repo    repository.PropertyRepository
	storage StorageService
}

func NewPropertyService(repo repository.PropertyRepository, storage StorageService) *PropertyService {
	return &PropertyService{repo: repo, storage: storage}
}

// Create registers a property under the caller. Owners create for
// themselves; admins create on behalf of an owner via ownerID.
func (s *PropertyService) Create(ctx context.Context, caller repository.Caller, ownerID uint, input CreatePropertyInput) (*domain.Property, error) {
	if caller.Role == domain.RoleOwner {
		ownerID = caller.ID
	}
	title := strings.TrimSpace(input.Title)
	address := strings.TrimSpace(input.Address)
	if len(title) < 3 || len(title) > 255 {
		return nil, ErrPropertyInvalidTitle
	}
	if address == "" {
		return nil, ErrPropertyInvalidAddress
	}
	if input.RentAmount <= 0 {
		return nil, ErrPropertyInvalidRent
	}

	property := &domain.Property{
		OwnerID:     ownerID,
		BrokerID:    input.BrokerID,
		Title:       title,
		Address:     address,
		Commune:     strings.TrimSpace(input.Commune),
		Status:      domain.PropertyStatusAvailable,
		RentAmount:  input.RentAmount,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		AreaM2:      input.AreaM2,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.repo.Create(property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) GetByID(ctx context.Context, caller repository.Caller, id uint) (*domain.Property, error) {
	return s.repo.FindByID(caller, id)
}

func (s *PropertyService) ListPaged(ctx context.Context, caller repository.Caller, filter repository.PropertyFilter, req repository.PageRequest) (repository.PageResult[domain.Property], error) {
	if filter.Status != "" && !containsString(domain.PropertyStatuses, filter.Status) {
		return repository.PageResult[domain.Property]{}, ErrPropertyInvalidStatus
	}
	return s.repo.ListPaged(caller, filter, req)
}

func (s *PropertyService) Update(ctx context.Context, caller repository.Caller, id uint, input UpdatePropertyInput) (*domain.Property, error) {
	updates := map[string]any{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if len(title) < 3 || len(title) > 255 {
			return nil, ErrPropertyInvalidTitle
		}
		updates["title"] = title
	}
	if input.Address != nil {
		address := strings.TrimSpace(*input.Address)
		if address == "" {
			return nil, ErrPropertyInvalidAddress
		}
		updates["address"] = address
	}
	if input.Commune != nil {
		updates["commune"] = strings.TrimSpace(*input.Commune)
	}
	if input.Status != nil {
		if !containsString(domain.PropertyStatuses, *input.Status) {
			return nil, ErrPropertyInvalidStatus
		}
		updates["status"] = *input.Status
	}
	if input.RentAmount != nil {
		if *input.RentAmount <= 0 {
			return nil, ErrPropertyInvalidRent
		}
		updates["rent_amount"] = *input.RentAmount
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.BrokerID != nil {
		updates["broker_id"] = *input.BrokerID
	}
	if len(updates) == 0 {
		return nil, ErrPropertyNoUpdates
	}

	if err := s.repo.Update(caller, id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(caller, id)
}

func (s *PropertyService) DeleteByID(ctx context.Context, caller repository.Caller, id uint) error {
	return s.repo.DeleteByID(caller, id)
}

// UploadPhoto stores a photo for a property in the caller's scope and
// appends the object key to the property's photo list.
func (s *PropertyService) UploadPhoto(ctx context.Context, caller repository.Caller, propertyID uint, file io.Reader, size int64, contentType string) (string, error) {
	property, err := s.repo.FindByID(caller, propertyID)
	if err != nil {
		return "", err
	}
	key, err := s.storage.UploadPropertyPhoto(ctx, property.OwnerID, property.ID, file, size, contentType)
	if err != nil {
		return "", err
	}
	keys := append(property.PhotoKeyList(), key)
	if err := s.repo.Update(caller, propertyID, map[string]any{"photo_keys": strings.Join(keys, ",")}); err != nil {
		return "", err
	}
	return key, nil
}

// DeletePhoto removes one stored photo and drops its key from the property's
// photo list. The storage object is removed before the key list is updated.
func (s *PropertyService) DeletePhoto(ctx context.Context, caller repository.Caller, propertyID uint, objectKey string) error {
	property, err := s.repo.FindByID(caller, propertyID)
	if err != nil {
		return err
	}
	keys := property.PhotoKeyList()
	remaining := make([]string, 0, len(keys))
	found := false
	for _, key := range keys {
		if key == objectKey {
			found = true
			continue
		}
		remaining = append(remaining, key)
	}
	if !found {
		return ErrPhotoNotFound
	}
	if err := s.storage.DeletePropertyPhoto(ctx, property.OwnerID, objectKey); err != nil {
		return err
	}
	return s.repo.Update(caller, propertyID, map[string]any{"photo_keys": strings.Join(remaining, ",")})
}

// PhotoURLs resolves presigned download URLs for a property's photos.
func (s *PropertyService) PhotoURLs(ctx context.Context, caller repository.Caller, propertyID uint) ([]string, error) {
	property, err := s.repo.FindByID(caller, propertyID)
	if err != nil {
		return nil, err
	}
	keys := property.PhotoKeyList()
	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		u, err := s.storage.PresignedPhotoURL(ctx, key)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

func containsString(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
