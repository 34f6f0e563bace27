package businessflow

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// MediaFlow handles admin file uploads and explicit deletions. Stored files
// are tracked in the asset table so orphans can be accounted for.
type MediaFlow interface {
	Upload(ctx context.Context, folder, originalName string, size int64, r io.Reader, adminID uint) (*dto.UploadMediaResponse, error)
	Delete(ctx context.Context, publicID string) error
}

// MediaFlowImpl implements MediaFlow
type MediaFlowImpl struct {
	storage   services.MediaStorage
	assetRepo repository.MediaAssetRepository
}

// NewMediaFlow creates a new media flow instance
func NewMediaFlow(storage services.MediaStorage, assetRepo repository.MediaAssetRepository) MediaFlow {
	return &MediaFlowImpl{
		storage:   storage,
		assetRepo: assetRepo,
	}
}

func (f *MediaFlowImpl) Upload(ctx context.Context, folder, originalName string, size int64, r io.Reader, adminID uint) (*dto.UploadMediaResponse, error) {
	if originalName == "" || size <= 0 {
		return nil, NewBusinessError("INVALID_FILE", "A non-empty file is required", nil)
	}

	stored, err := f.storage.Store(ctx, folder, originalName, size, r)
	if err != nil {
		switch err {
		case services.ErrFileTooLarge:
			return nil, NewBusinessError("FILE_TOO_LARGE", "File exceeds the allowed size", err)
		case services.ErrInvalidFileType:
			return nil, NewBusinessError("INVALID_FILE_TYPE", "Only image files are accepted", err)
		}
		if be, ok := err.(*BusinessError); ok {
			return nil, be
		}
		return nil, NewBusinessError("UPLOAD_FAILED", "Failed to store file", err)
	}

	asset := models.MediaAsset{
		UUID:         uuid.New(),
		PublicID:     stored.PublicID,
		URL:          stored.URL,
		ThumbnailURL: stored.ThumbnailURL,
		OriginalName: stored.OriginalName,
		MimeType:     stored.MimeType,
		SizeBytes:    stored.SizeBytes,
		Folder:       folder,
	}
	if adminID != 0 {
		asset.UploadedByID = &adminID
	}

	if err := f.assetRepo.Save(ctx, &asset); err != nil {
		if derr := f.storage.Delete(ctx, stored.PublicID); derr != nil {
			log.Printf("orphan cleanup failed for %s: %v", stored.PublicID, derr)
		}
		return nil, NewBusinessError("UPLOAD_FAILED", "Failed to record upload", err)
	}

	return &dto.UploadMediaResponse{
		URL:          stored.URL,
		ThumbnailURL: stored.ThumbnailURL,
		PublicID:     stored.PublicID,
		OriginalName: stored.OriginalName,
		SizeBytes:    stored.SizeBytes,
		MimeType:     stored.MimeType,
	}, nil
}

// Delete removes the stored file and its bookkeeping row. A storage failure
// is logged but does not keep the row alive.
func (f *MediaFlowImpl) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return NewBusinessError("INVALID_REQUEST", "publicId is required", nil)
	}

	if err := f.storage.Delete(ctx, publicID); err != nil {
		log.Printf("media delete failed for %s: %v", publicID, err)
	}

	if err := f.assetRepo.DeleteByPublicID(ctx, publicID); err != nil {
		return NewBusinessError("DELETE_FAILED", "Failed to delete media record", err)
	}
	return nil
}
