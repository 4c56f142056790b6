package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/arriendohq/arriendo/internal/observability"
)

const (
	maxPhotoSize    = 10 * 1024 * 1024 // 10 MB
	presignedTTL    = 15 * time.Minute
	photoPathPrefix = "properties"
)

var (
	ErrFileTooBig           = errors.New("file size exceeds 10MB limit")
	ErrInvalidFileType      = errors.New("invalid file type, only JPEG, PNG and WebP images are allowed")
	ErrBucketCreationFailed = errors.New("failed to create storage bucket")
	ErrUploadFailed         = errors.New("failed to upload file")
	ErrDeleteFailed         = errors.New("failed to delete file")
	ErrURLGenerationFailed  = errors.New("failed to generate presigned URL")
	ErrStorageDisabled      = errors.New("object storage is not configured")

	allowedPhotoTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
		"image/webp": {},
	}
)

// StorageService stores property photos and serves them through short-lived
// presigned URLs.
type StorageService interface {
	UploadPropertyPhoto(ctx context.Context, ownerID, propertyID uint, file io.Reader, fileSize int64, contentType string) (string, error)
	DeletePropertyPhoto(ctx context.Context, ownerID uint, objectKey string) error
	PresignedPhotoURL(ctx context.Context, objectKey string) (string, error)
}

type MinIOStorageService struct {
	client     *minio.Client
	bucketName string
	initOnce   sync.Once
	initErr    error
}

// Bucket creation is deferred until the first operation so a missing MinIO
// endpoint does not block app startup.
func NewMinIOStorageService(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOStorageService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinIOStorageService{client: client, bucketName: bucketName}, nil
}

// Client exposes the underlying MinIO client for readiness probing.
func (s *MinIOStorageService) Client() *minio.Client {
	return s.client
}

func (s *MinIOStorageService) lazyInit(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.ensureBucketExists(ctx)
	})
	return s.initErr
}

func (s *MinIOStorageService) ensureBucketExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("%w: check bucket existence: %v", ErrBucketCreationFailed, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("%w: create bucket: %v", ErrBucketCreationFailed, err)
		}
	}
	return nil
}

// UploadPropertyPhoto sniffs the real content type from the bytes; the
// client-provided Content-Type header is never trusted.
func (s *MinIOStorageService) UploadPropertyPhoto(ctx context.Context, ownerID, propertyID uint, file io.Reader, fileSize int64, contentType string) (string, error) {
	if fileSize > maxPhotoSize {
		observability.RecordStorageOperation(ctx, "upload", "too_big")
		return "", ErrFileTooBig
	}

	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		observability.RecordStorageOperation(ctx, "upload", "error")
		return "", fmt.Errorf("%w: read file for content detection: %v", ErrUploadFailed, err)
	}
	buf = buf[:n]

	detectedType := strings.ToLower(strings.TrimSpace(http.DetectContentType(buf)))
	if _, allowed := allowedPhotoTypes[detectedType]; !allowed {
		observability.RecordStorageOperation(ctx, "upload", "invalid_type")
		return "", ErrInvalidFileType
	}

	if err := s.lazyInit(ctx); err != nil {
		observability.RecordStorageOperation(ctx, "upload", "error")
		return "", err
	}

	fullFile := io.MultiReader(bytes.NewReader(buf), file)
	objectKey := fmt.Sprintf("%s/owner-%d/property-%d/%s%s", photoPathPrefix, ownerID, propertyID, uuid.New().String(), photoExtension(detectedType))

	metadata := map[string]string{
		"Detected-Content-Type": detectedType,
		"Owner-ID":              fmt.Sprintf("%d", ownerID),
		"Property-ID":           fmt.Sprintf("%d", propertyID),
		"Uploaded-At":           time.Now().UTC().Format(time.RFC3339),
	}
	_, err = s.client.PutObject(ctx, s.bucketName, objectKey, fullFile, fileSize, minio.PutObjectOptions{
		ContentType:  detectedType,
		UserMetadata: metadata,
	})
	if err != nil {
		observability.RecordStorageOperation(ctx, "upload", "error")
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	observability.RecordStorageOperation(ctx, "upload", "success")
	return objectKey, nil
}

// DeletePropertyPhoto enforces that the key sits under the owner's prefix
// before touching storage.
func (s *MinIOStorageService) DeletePropertyPhoto(ctx context.Context, ownerID uint, objectKey string) error {
	if strings.TrimSpace(objectKey) == "" {
		return nil
	}
	if strings.Contains(objectKey, "..") {
		return ErrDeleteFailed
	}
	expectedPrefix := fmt.Sprintf("%s/owner-%d/", photoPathPrefix, ownerID)
	if !strings.HasPrefix(objectKey, expectedPrefix) {
		observability.RecordStorageOperation(ctx, "delete", "denied")
		return ErrDeleteFailed
	}

	if err := s.lazyInit(ctx); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		observability.RecordStorageOperation(ctx, "delete", "error")
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	observability.RecordStorageOperation(ctx, "delete", "success")
	return nil
}

func (s *MinIOStorageService) PresignedPhotoURL(ctx context.Context, objectKey string) (string, error) {
	if strings.TrimSpace(objectKey) == "" {
		return "", fmt.Errorf("%w: empty object key", ErrURLGenerationFailed)
	}
	if err := s.lazyInit(ctx); err != nil {
		return "", err
	}
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, presignedTTL, url.Values{})
	if err != nil {
		observability.RecordStorageOperation(ctx, "presign", "error")
		return "", fmt.Errorf("%w: %v", ErrURLGenerationFailed, err)
	}
	observability.RecordStorageOperation(ctx, "presign", "success")
	return presignedURL.String(), nil
}

func photoExtension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

// NoopStorageService backs deployments without object storage; every
// operation reports storage as disabled.
type NoopStorageService struct{}

func (NoopStorageService) UploadPropertyPhoto(context.Context, uint, uint, io.Reader, int64, string) (string, error) {
	return "", ErrStorageDisabled
}

func (NoopStorageService) DeletePropertyPhoto(context.Context, uint, string) error {
	return ErrStorageDisabled
}

func (NoopStorageService) PresignedPhotoURL(context.Context, string) (string, error) {
	return "", ErrStorageDisabled
}
