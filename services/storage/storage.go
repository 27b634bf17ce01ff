package storage

import (
	"context"
	"fmt"

	"meditrip/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores patient documents (medical reports, passports, visa
// scans) in Cloudinary and hands back permanent identifiers.
type StorageService interface {
	UploadDocument(ctx context.Context, localFilePath, folder string) (string, error)
	DeleteDocument(ctx context.Context, publicID string) error
	DownloadURL(ctx context.Context, publicID string) (string, error)
}

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService builds the Cloudinary-backed implementation from the
// CLOUDINARY_URL credential string.
func NewStorageService() (StorageService, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &cloudinaryStorage{cld: cld}, nil
}

func (s *cloudinaryStorage) UploadDocument(ctx context.Context, localFilePath, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned for uploaded document")
	}
	return result.PublicID, nil
}

func (s *cloudinaryStorage) DeleteDocument(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", publicID, err)
	}
	return nil
}

func (s *cloudinaryStorage) DownloadURL(ctx context.Context, publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve document %s: %w", publicID, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build download URL for %s: %w", publicID, err)
	}
	return url, nil
}
